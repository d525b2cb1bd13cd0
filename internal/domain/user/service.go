package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	cost int
}

// NewService builds the credential service. A cost of zero or less falls
// back to bcrypt.DefaultCost.
func NewService(repo Repository, cost int) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: cost}
}

// Signup registers a new user. The userName uniqueness check and the insert
// are not atomic; uniqueness is enforced only at signup time.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		return nil, fmt.Errorf("userName is required")
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	_, err := s.repo.GetByUserName(ctx, userName)
	if err == nil {
		return nil, ErrUserNameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	registered := User{
		UserName:     userName,
		Password:     string(hash),
		EmailAddress: strings.TrimSpace(input.EmailAddress),
	}

	if err := s.repo.Create(ctx, &registered); err != nil {
		return nil, err
	}

	return &registered, nil
}

// Login is a stateless credential check; no session or token is issued.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, userName, password string) error {
	stored, err := s.repo.GetByUserName(ctx, strings.TrimSpace(userName))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}
