// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartspend/internal/domain"
	"smartspend/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

const uniqueViolation = "23505"

// validID filters ids that cannot possibly match a UUID column, so a
// malformed path parameter reads as not-found instead of a driver
// encode error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

const userColumns = `id, name, email, password_hash, settings, custom_categories, budgets, avatar, telegram_chat_id, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Settings, &u.CustomCategories, &u.Budgets,
		&u.Avatar, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// === UserStorage ===

func (s *Storage) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.CustomCategories == nil {
		u.CustomCategories = []string{}
	}
	if u.Budgets == nil {
		u.Budgets = map[string]float64{}
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, settings, custom_categories, budgets, avatar, telegram_chat_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.Settings, u.CustomCategories, u.Budgets, u.Avatar, u.TelegramChatID, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *Storage) GetUserByTelegramChat(ctx context.Context, chatID int64) (*domain.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_chat_id = $1`, chatID)
	return scanUser(row)
}

func (s *Storage) UpdateSettings(ctx context.Context, id string, settings domain.Settings) (*domain.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	row := s.db.QueryRow(ctx, `
		UPDATE users SET settings = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, settings)
	return scanUser(row)
}

func (s *Storage) UpdateCategories(ctx context.Context, id string, categories []string) (*domain.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	if categories == nil {
		categories = []string{}
	}
	row := s.db.QueryRow(ctx, `
		UPDATE users SET custom_categories = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, categories)
	return scanUser(row)
}

func (s *Storage) UpdateBudgets(ctx context.Context, id string, budgets map[string]float64) (*domain.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	if budgets == nil {
		budgets = map[string]float64{}
	}
	row := s.db.QueryRow(ctx, `
		UPDATE users SET budgets = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, budgets)
	return scanUser(row)
}

// UpdateProfile merges name and avatar; empty values leave the stored
// field untouched.
func (s *Storage) UpdateProfile(ctx context.Context, id, name, avatar string) (*domain.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	row := s.db.QueryRow(ctx, `
		UPDATE users SET
			name = COALESCE(NULLIF($2, ''), name),
			avatar = COALESCE(NULLIF($3, ''), avatar),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, name, avatar)
	return scanUser(row)
}

func (s *Storage) LinkTelegramChat(ctx context.Context, id string, chatID int64) error {
	if !validID(id) {
		return storage.ErrNotFound
	}
	tag, err := s.db.Exec(ctx, `UPDATE users SET telegram_chat_id = $2, updated_at = now() WHERE id = $1`, id, chatID)
	if err != nil {
		return fmt.Errorf("link telegram chat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// === TransactionStorage ===

const txColumns = `id, text, amount, type, category, user_id, is_recurring, billing_cycle, next_billing_date, mood, date`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.Text, &t.Amount, &t.Type, &t.Category, &t.UserID,
		&t.IsRecurring, &t.BillingCycle, &t.NextBillingDate, &t.Mood, &t.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return &t, nil
}

func (s *Storage) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO transactions (id, text, amount, type, category, user_id, is_recurring, billing_cycle, next_billing_date, mood, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, t.ID, t.Text, t.Amount, t.Type, t.Category, t.UserID, t.IsRecurring, t.BillingCycle, t.NextBillingDate, t.Mood, t.Date)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *Storage) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if !validID(userID) {
		return []domain.Transaction{}, nil
	}
	rows, err := s.db.Query(ctx, `SELECT `+txColumns+` FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.Text, &t.Amount, &t.Type, &t.Category, &t.UserID,
			&t.IsRecurring, &t.BillingCycle, &t.NextBillingDate, &t.Mood, &t.Date,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *Storage) UpdateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if !validID(t.ID) {
		return nil, storage.ErrNotFound
	}
	row := s.db.QueryRow(ctx, `
		UPDATE transactions SET
			text = $2, amount = $3, type = $4, category = $5,
			is_recurring = $6, billing_cycle = $7, next_billing_date = $8, mood = $9
		WHERE id = $1
		RETURNING `+txColumns,
		t.ID, t.Text, t.Amount, t.Type, t.Category,
		t.IsRecurring, t.BillingCycle, t.NextBillingDate, t.Mood)
	return scanTransaction(row)
}

func (s *Storage) DeleteTransaction(ctx context.Context, id string) error {
	if !validID(id) {
		return storage.ErrNotFound
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
