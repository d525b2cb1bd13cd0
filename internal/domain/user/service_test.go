package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *User) error {
	r.users[user.UserName] = user
	return nil
}

func (r *fakeUserRepo) GetByUserName(ctx context.Context, userName string) (*User, error) {
	stored, ok := r.users[userName]
	if !ok {
		return nil, ErrUserNotFound
	}
	return stored, nil
}

func TestSignupThenLogin(t *testing.T) {
	service := NewService(newFakeUserRepo(), bcrypt.MinCost)

	registered, err := service.Signup(context.Background(), SignupInput{
		UserName:     "wmccue",
		Password:     "s3cret",
		EmailAddress: "wmccue@example.com",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if registered.UserName != "wmccue" {
		t.Errorf("userName = %q, want %q", registered.UserName, "wmccue")
	}
	if registered.EmailAddress != "wmccue@example.com" {
		t.Errorf("emailAddress = %q, want %q", registered.EmailAddress, "wmccue@example.com")
	}
	if registered.Password == "s3cret" {
		t.Error("password stored in plaintext")
	}

	if err := service.Login(context.Background(), "wmccue", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := service.Signup(context.Background(), SignupInput{UserName: "wmccue", Password: "s3cret"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	err := service.Login(context.Background(), "wmccue", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := NewService(newFakeUserRepo(), bcrypt.MinCost)

	err := service.Login(context.Background(), "nobody", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignupDuplicateUserName(t *testing.T) {
	service := NewService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := service.Signup(context.Background(), SignupInput{UserName: "wmccue", Password: "s3cret"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := service.Signup(context.Background(), SignupInput{UserName: "wmccue", Password: "other"})
	if !errors.Is(err, ErrUserNameTaken) {
		t.Fatalf("second signup err = %v, want ErrUserNameTaken", err)
	}
}

func TestSignupRequiresUserNameAndPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := service.Signup(context.Background(), SignupInput{Password: "s3cret"}); err == nil {
		t.Error("signup without userName succeeded")
	}
	if _, err := service.Signup(context.Background(), SignupInput{UserName: "wmccue"}); err == nil {
		t.Error("signup without password succeeded")
	}
}
