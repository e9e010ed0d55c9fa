// internal/storage/storage.go
package storage

import (
	"context"
	"errors"

	"smartspend/internal/domain"
)

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when creating a user with an email
	// that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

type UserStorage interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByTelegramChat(ctx context.Context, chatID int64) (*domain.User, error)
	UpdateSettings(ctx context.Context, id string, s domain.Settings) (*domain.User, error)
	UpdateCategories(ctx context.Context, id string, categories []string) (*domain.User, error)
	UpdateBudgets(ctx context.Context, id string, budgets map[string]float64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, avatar string) (*domain.User, error)
	LinkTelegramChat(ctx context.Context, id string, chatID int64) error
}

type TransactionStorage interface {
	CreateTransaction(ctx context.Context, t *domain.Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// Storage is the full persistence surface the handlers depend on.
type Storage interface {
	UserStorage
	TransactionStorage
}
