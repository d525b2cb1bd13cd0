package composer

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeComposerRepo struct {
	composers map[string]*Composer
}

func newFakeComposerRepo() *fakeComposerRepo {
	return &fakeComposerRepo{composers: make(map[string]*Composer)}
}

func (r *fakeComposerRepo) Create(ctx context.Context, composer *Composer) error {
	composer.ID = primitive.NewObjectID()
	r.composers[composer.ID.Hex()] = composer
	return nil
}

func (r *fakeComposerRepo) List(ctx context.Context) ([]Composer, error) {
	result := make([]Composer, 0, len(r.composers))
	for _, stored := range r.composers {
		result = append(result, *stored)
	}
	return result, nil
}

func (r *fakeComposerRepo) GetByID(ctx context.Context, composerID string) (*Composer, error) {
	if _, err := primitive.ObjectIDFromHex(composerID); err != nil {
		return nil, ErrInvalidID
	}
	stored, ok := r.composers[composerID]
	if !ok {
		return nil, ErrComposerNotFound
	}
	return stored, nil
}

func TestCreateComposerEchoesFields(t *testing.T) {
	service := NewService(newFakeComposerRepo())

	created, err := service.Create(context.Background(), CreateComposerInput{
		FirstName: "Johann",
		LastName:  "Bach",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FirstName != "Johann" || created.LastName != "Bach" {
		t.Errorf("created = %+v, fields not echoed", created)
	}
}

func TestCreateComposerRequiresBothNames(t *testing.T) {
	service := NewService(newFakeComposerRepo())

	if _, err := service.Create(context.Background(), CreateComposerInput{LastName: "Bach"}); err == nil {
		t.Error("create without firstName succeeded")
	}
	if _, err := service.Create(context.Background(), CreateComposerInput{FirstName: "Johann"}); err == nil {
		t.Error("create without lastName succeeded")
	}
}

func TestGetComposerUnknownID(t *testing.T) {
	service := NewService(newFakeComposerRepo())

	_, err := service.GetByID(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrComposerNotFound) {
		t.Fatalf("err = %v, want ErrComposerNotFound", err)
	}
}
