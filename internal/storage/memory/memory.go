// internal/storage/memory/memory.go
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"smartspend/internal/domain"
	"smartspend/internal/storage"

	"github.com/google/uuid"
)

// Store is an in-memory Storage implementation used by tests and for
// running the bot without a database.
type Store struct {
	mu           sync.Mutex
	users        map[string]*domain.User
	transactions []domain.Transaction
}

func New() *Store {
	return &Store{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	out := *u
	out.CustomCategories = append([]string(nil), u.CustomCategories...)
	out.Budgets = make(map[string]float64, len(u.Budgets))
	for k, v := range u.Budgets {
		out.Budgets[k] = v
	}
	return &out
}

// === UserStorage ===

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return storage.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.CustomCategories == nil {
		u.CustomCategories = []string{}
	}
	if u.Budgets == nil {
		u.Budgets = map[string]float64{}
	}
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) GetUserByTelegramChat(_ context.Context, chatID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.TelegramChatID == chatID && chatID != 0 {
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) UpdateSettings(_ context.Context, id string, settings domain.Settings) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	u.Settings = settings
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (s *Store) UpdateCategories(_ context.Context, id string, categories []string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if categories == nil {
		categories = []string{}
	}
	u.CustomCategories = append([]string(nil), categories...)
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (s *Store) UpdateBudgets(_ context.Context, id string, budgets map[string]float64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	u.Budgets = make(map[string]float64, len(budgets))
	for k, v := range budgets {
		u.Budgets[k] = v
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (s *Store) UpdateProfile(_ context.Context, id, name, avatar string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if name != "" {
		u.Name = name
	}
	if avatar != "" {
		u.Avatar = avatar
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (s *Store) LinkTelegramChat(_ context.Context, id string, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.TelegramChatID = chatID
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// === TransactionStorage ===

func (s *Store) CreateTransaction(_ context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	s.transactions = append(s.transactions, *t)
	return nil
}

func (s *Store) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Transaction{}
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) UpdateTransaction(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			existing := &s.transactions[i]
			existing.Text = t.Text
			existing.Amount = t.Amount
			existing.Type = t.Type
			existing.Category = t.Category
			existing.IsRecurring = t.IsRecurring
			existing.BillingCycle = t.BillingCycle
			existing.NextBillingDate = t.NextBillingDate
			existing.Mood = t.Mood
			updated := *existing
			return &updated, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}
