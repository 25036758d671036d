package services

import (
	"context"

	"github.com/accountd/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindCredentialsByName(ctx context.Context, name string) (int, string, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	Insert(ctx context.Context, name, passwordHash string, email *string) (int, error)
	List(ctx context.Context) ([]types.User, error)
	DeleteByID(ctx context.Context, id int) error
	UpdateEmailByID(ctx context.Context, id int, email string) error
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) FindCredentialsByName(ctx context.Context, name string) (int, string, error) {
	return s.repo.FindCredentialsByName(ctx, name)
}

func (s *UserService) FindIDByName(ctx context.Context, name string) (int, error) {
	return s.repo.FindIDByName(ctx, name)
}

func (s *UserService) Create(ctx context.Context, name, passwordHash string, email *string) (int, error) {
	return s.repo.Insert(ctx, name, passwordHash, email)
}

func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *UserService) UpdateEmail(ctx context.Context, id int, email string) error {
	return s.repo.UpdateEmailByID(ctx, id, email)
}
