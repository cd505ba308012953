package graph

import (
	"context"
	"fmt"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// In-memory repositories backing the schema tests.

type stubUserRepo struct {
	users            map[string]*domain.User
	seq              int
	bootstrapClaimed bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := *user
	created.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) ClaimAdminBootstrap(_ context.Context) (bool, error) {
	if r.bootstrapClaimed {
		return false, nil
	}
	r.bootstrapClaimed = true
	return true, nil
}

func (r *stubUserRepo) ReleaseAdminBootstrap(_ context.Context) error {
	r.bootstrapClaimed = false
	return nil
}

type stubDogRepo struct {
	dogs map[string]*domain.Dog
	seq  int
}

func newStubDogRepo() *stubDogRepo {
	return &stubDogRepo{dogs: make(map[string]*domain.Dog)}
}

func (r *stubDogRepo) Create(_ context.Context, dog *domain.Dog) (*domain.Dog, error) {
	r.seq++
	created := *dog
	created.ID = fmt.Sprintf("dog_%d", r.seq)
	r.dogs[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubDogRepo) FindByID(_ context.Context, id string) (*domain.Dog, error) {
	if d, ok := r.dogs[id]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, domain.ErrDogNotFound
}

func (r *stubDogRepo) FindAll(_ context.Context) ([]domain.Dog, error) {
	out := make([]domain.Dog, 0, len(r.dogs))
	for _, d := range r.dogs {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDogRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Dog, error) {
	var out []domain.Dog
	for _, d := range r.dogs {
		if d.OwnerID == ownerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDogRepo) FindByBreed(_ context.Context, breedID string) ([]domain.Dog, error) {
	var out []domain.Dog
	for _, d := range r.dogs {
		if d.BreedID == breedID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDogRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.dogs[id]; !ok {
		return false, nil
	}
	delete(r.dogs, id)
	return true, nil
}

type stubBreedRepo struct {
	breeds map[string]*domain.DogBreed
	seq    int
}

func newStubBreedRepo() *stubBreedRepo {
	return &stubBreedRepo{breeds: make(map[string]*domain.DogBreed)}
}

func (r *stubBreedRepo) Create(_ context.Context, breed *domain.DogBreed) (*domain.DogBreed, error) {
	r.seq++
	created := *breed
	created.ID = fmt.Sprintf("breed_%d", r.seq)
	r.breeds[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubBreedRepo) FindByID(_ context.Context, id string) (*domain.DogBreed, error) {
	if b, ok := r.breeds[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBreedNotFound
}

func (r *stubBreedRepo) FindAll(_ context.Context) ([]domain.DogBreed, error) {
	out := make([]domain.DogBreed, 0, len(r.breeds))
	for _, b := range r.breeds {
		out = append(out, *b)
	}
	return out, nil
}
