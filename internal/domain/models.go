// internal/domain/models.go
package domain

import "time"

type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Moods a transaction can be tagged with. Empty means untagged.
var Moods = []string{"Happy", "Neutral", "Stressed", "Impulsive"}

// DefaultCategories is the built-in category set; users extend it
// with CustomCategories on their profile.
var DefaultCategories = []string{
	"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Other",
}

type Settings struct {
	Currency      string  `json:"currency"`
	DarkMode      bool    `json:"darkMode"`
	SavingGoal    float64 `json:"savingGoal"`
	OverallBudget float64 `json:"overallBudget"`
}

func DefaultSettings() Settings {
	return Settings{
		Currency:      "LKR",
		DarkMode:      false,
		SavingGoal:    50000,
		OverallBudget: 0,
	}
}

type User struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	PasswordHash     string             `json:"-"`
	Settings         Settings           `json:"settings"`
	CustomCategories []string           `json:"customCategories"`
	Budgets          map[string]float64 `json:"budgets"`
	Avatar           string             `json:"avatar"`
	TelegramChatID   int64              `json:"-"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// KnownCategories returns the default set plus the user's custom
// categories. Budget map keys must come from this set.
func (u *User) KnownCategories() []string {
	out := make([]string, 0, len(DefaultCategories)+len(u.CustomCategories))
	out = append(out, DefaultCategories...)
	out = append(out, u.CustomCategories...)
	return out
}

func (u *User) KnowsCategory(name string) bool {
	for _, c := range u.KnownCategories() {
		if c == name {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID              string          `json:"id"`
	Text            string          `json:"text"`
	Amount          float64         `json:"amount"`
	Type            TransactionType `json:"type"`
	Category        string          `json:"category"`
	UserID          string          `json:"userId"`
	IsRecurring     bool            `json:"isRecurring"`
	BillingCycle    BillingCycle    `json:"billingCycle"`
	NextBillingDate *time.Time      `json:"nextBillingDate,omitempty"`
	Mood            string          `json:"mood,omitempty"`
	Date            time.Time       `json:"date"`
}
