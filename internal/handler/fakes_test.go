package handler

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/current-cruiser/internal/model"
	"github.com/iliyamo/current-cruiser/internal/repository"
	"github.com/iliyamo/current-cruiser/internal/utils"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

const jwtTestSecret = "handler-test-secret"

// In-memory store fakes. Soft-deleted records stay in the backing slice
// so tests can assert that deletion only marks deleted_at.

type fakeUserStore struct {
	users       []*model.User
	createCalls int
}

func (s *fakeUserStore) Create(_ context.Context, username, email, password, role string) (*model.User, error) {
	s.createCalls++
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &model.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     strings.ToLower(email),
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindActive(_ context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range s.users {
		if u.DeletedAt == nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) Update(ctx context.Context, id string, in validator.UpdateUserInput) (*model.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

func (s *fakeUserStore) SoftDelete(ctx context.Context, id string) (*model.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u.DeletedAt = &now
	u.UpdatedAt = now
	return u, nil
}

type fakeCarStore struct {
	cars        []*model.Car
	createCalls int
}

func (s *fakeCarStore) Create(_ context.Context, car *model.Car) error {
	s.createCalls++
	car.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now
	s.cars = append(s.cars, car)
	return nil
}

func (s *fakeCarStore) FindActive(_ context.Context) ([]model.Car, error) {
	out := []model.Car{}
	for _, car := range s.cars {
		if car.DeletedAt == nil {
			out = append(out, *car)
		}
	}
	return out, nil
}

func (s *fakeCarStore) FindByID(_ context.Context, id string) (*model.Car, error) {
	for _, car := range s.cars {
		if car.ID.Hex() == id && car.DeletedAt == nil {
			return car, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCarStore) Update(ctx context.Context, id string, in validator.UpdateCarInput) (*model.Car, error) {
	car, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		car.Name = *in.Name
	}
	if in.History != nil {
		car.History = *in.History
	}
	if in.Description != nil {
		car.Description = *in.Description
	}
	if in.Specifications != nil {
		if in.Specifications.Motor != nil {
			car.Specifications.Motor = *in.Specifications.Motor
		}
		if in.Specifications.Horsepower != nil {
			car.Specifications.Horsepower = *in.Specifications.Horsepower
		}
		if in.Specifications.Mph0to60 != nil {
			car.Specifications.Mph0to60 = *in.Specifications.Mph0to60
		}
		if in.Specifications.TopSpeed != nil {
			car.Specifications.TopSpeed = *in.Specifications.TopSpeed
		}
	}
	if in.CategoryID != nil {
		car.CategoryID = *in.CategoryID
	}
	if in.AvailableInMarket != nil {
		car.AvailableInMarket = *in.AvailableInMarket
	}
	car.UpdatedAt = time.Now().UTC()
	return car, nil
}

func (s *fakeCarStore) SoftDelete(ctx context.Context, id string) (*model.Car, error) {
	car, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	car.DeletedAt = &now
	car.UpdatedAt = now
	return car, nil
}

type fakeCategoryStore struct {
	categories []*model.Category
}

func (s *fakeCategoryStore) Create(_ context.Context, cat *model.Category) error {
	cat.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	s.categories = append(s.categories, cat)
	return nil
}

func (s *fakeCategoryStore) FindActive(_ context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, cat := range s.categories {
		if cat.DeletedAt == nil {
			out = append(out, *cat)
		}
	}
	return out, nil
}

func (s *fakeCategoryStore) FindByID(_ context.Context, id string) (*model.Category, error) {
	for _, cat := range s.categories {
		if cat.ID.Hex() == id && cat.DeletedAt == nil {
			return cat, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCategoryStore) Update(ctx context.Context, id, name string) (*model.Category, error) {
	cat, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = name
	cat.UpdatedAt = time.Now().UTC()
	return cat, nil
}

func (s *fakeCategoryStore) SoftDelete(ctx context.Context, id string) (*model.Category, error) {
	cat, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	cat.DeletedAt = &now
	cat.UpdatedAt = now
	return cat, nil
}

type fakeListStore struct {
	lists []*model.List
}

func (s *fakeListStore) Create(_ context.Context, list *model.List) error {
	list.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	list.CreatedAt = now
	list.UpdatedAt = now
	s.lists = append(s.lists, list)
	return nil
}

func (s *fakeListStore) FindActive(_ context.Context) ([]model.List, error) {
	out := []model.List{}
	for _, l := range s.lists {
		if l.DeletedAt == nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *fakeListStore) FindActiveByUserID(_ context.Context, userID string) ([]model.List, error) {
	out := []model.List{}
	for _, l := range s.lists {
		if l.UserID == userID && l.DeletedAt == nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *fakeListStore) FindByID(_ context.Context, id string) (*model.List, error) {
	for _, l := range s.lists {
		if l.ID.Hex() == id && l.DeletedAt == nil {
			return l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeListStore) Update(ctx context.Context, id string, in validator.UpdateListInput) (*model.List, error) {
	l, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		l.UserID = *in.UserID
	}
	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.Cars != nil {
		l.Cars = *in.Cars
	}
	l.UpdatedAt = time.Now().UTC()
	return l, nil
}

func (s *fakeListStore) SoftDelete(ctx context.Context, id string) (*model.List, error) {
	l, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	l.DeletedAt = &now
	l.UpdatedAt = now
	return l, nil
}
