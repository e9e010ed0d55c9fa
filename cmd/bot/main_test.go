// cmd/bot/main_test.go
package main

import (
	"context"
	"testing"

	"smartspend/internal/auth"
	"smartspend/internal/domain"
	"smartspend/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatID = int64(42)

func seedLinkedUser(t *testing.T, store *memory.Store) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	u := &domain.User{
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: hash,
		Settings:     domain.DefaultSettings(),
	}
	require.NoError(t, store.CreateUser(context.Background(), u))
	require.NoError(t, store.LinkTelegramChat(context.Background(), u.ID, chatID))
	return u
}

func TestHelpCommand(t *testing.T) {
	store := memory.New()
	reply := handleCommand(context.Background(), store, chatID, "/help")
	assert.Contains(t, reply, "/add")
	assert.Contains(t, reply, "/month")
}

func TestUnknownCommand(t *testing.T) {
	store := memory.New()
	reply := handleCommand(context.Background(), store, chatID, "what")
	assert.Contains(t, reply, "Unknown command")
}

func TestLinkCommand(t *testing.T) {
	store := memory.New()
	hash, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	u := &domain.User{Name: "Ann", Email: "ann@x.com", PasswordHash: hash, Settings: domain.DefaultSettings()}
	require.NoError(t, store.CreateUser(context.Background(), u))

	reply := handleCommand(context.Background(), store, chatID, "/link ann@x.com wrong")
	assert.Contains(t, reply, "Invalid email or password")

	reply = handleCommand(context.Background(), store, chatID, "/link ann@x.com pw123")
	assert.Contains(t, reply, "Ann")

	got, err := store.GetUserByTelegramChat(context.Background(), chatID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAddRequiresLinkedChat(t *testing.T) {
	store := memory.New()
	reply := handleCommand(context.Background(), store, chatID, "/add Coffee 250")
	assert.Contains(t, reply, "not linked")
}

func TestAddWithAndWithoutCategory(t *testing.T) {
	store := memory.New()
	u := seedLinkedUser(t, store)

	reply := handleCommand(context.Background(), store, chatID, "/add Morning coffee 250 Food")
	assert.Contains(t, reply, "Saved")

	reply = handleCommand(context.Background(), store, chatID, "/add Bus ticket 60")
	assert.Contains(t, reply, "Saved")

	list, err := store.ListTransactions(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Morning coffee", list[0].Text)
	assert.Equal(t, 250.0, list[0].Amount)
	assert.Equal(t, "Food", list[0].Category)
	assert.Equal(t, "Bus ticket", list[1].Text)
	assert.Equal(t, "Other", list[1].Category)
}

func TestAddRejectsBadAmount(t *testing.T) {
	store := memory.New()
	seedLinkedUser(t, store)

	reply := handleCommand(context.Background(), store, chatID, "/add Coffee lots")
	assert.Contains(t, reply, "Invalid amount")
}

func TestMonthSummary(t *testing.T) {
	store := memory.New()
	u := seedLinkedUser(t, store)

	reply := handleCommand(context.Background(), store, chatID, "/month")
	assert.Contains(t, reply, "No transactions")

	require.NoError(t, store.CreateTransaction(context.Background(), &domain.Transaction{
		Text: "Coffee", Amount: 250, Type: domain.TypeExpense, Category: "Food", UserID: u.ID,
	}))

	reply = handleCommand(context.Background(), store, chatID, "/month")
	assert.Contains(t, reply, "Expenses")
	assert.Contains(t, reply, "Food")
}
