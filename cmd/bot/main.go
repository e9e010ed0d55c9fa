// cmd/bot/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"smartspend/internal/auth"
	"smartspend/internal/config"
	"smartspend/internal/domain"
	"smartspend/internal/insights"
	"smartspend/internal/storage"
	"smartspend/internal/storage/postgres"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const helpText = "💰 *SmartSpend*\n\n" +
	"Commands:\n" +
	"`/link email password` — connect this chat to your account\n" +
	"`/add Coffee 250 Food` — record an expense (category optional)\n" +
	"`/month` — current month summary\n" +
	"`/help` — this message"

func main() {
	cfg := config.MustLoad()
	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}
	pool, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewStorage(pool)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("failed to initialise bot", "error", err)
		os.Exit(1)
	}
	slog.Info("bot started", "username", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		chatID := update.Message.Chat.ID
		text := strings.TrimSpace(update.Message.Text)
		slog.Info("message received", "chat_id", chatID, "text", text)

		reply := handleCommand(context.Background(), store, chatID, text)

		msg := tgbotapi.NewMessage(chatID, reply)
		msg.ParseMode = "Markdown"
		if _, err := bot.Send(msg); err != nil {
			slog.Error("failed to send reply", "error", err, "chat_id", chatID)
		}
	}
}

func handleCommand(ctx context.Context, store storage.Storage, chatID int64, text string) string {
	switch {
	case text == "/start" || text == "/help":
		return helpText

	case strings.HasPrefix(text, "/link "):
		return handleLink(ctx, store, chatID, strings.TrimSpace(text[6:]))

	case strings.HasPrefix(text, "/add "):
		return handleAdd(ctx, store, chatID, strings.TrimSpace(text[5:]))

	case text == "/month":
		return handleMonth(ctx, store, chatID)

	default:
		return "Unknown command. Try /help"
	}
}

func linkedUser(ctx context.Context, store storage.Storage, chatID int64) (*domain.User, error) {
	user, err := store.GetUserByTelegramChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("this chat is not linked yet, use /link email password")
		}
		return nil, fmt.Errorf("something went wrong, try again later")
	}
	return user, nil
}

func handleLink(ctx context.Context, store storage.Storage, chatID int64, args string) string {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return "❌ Use: /link email password"
	}

	user, err := store.GetUserByEmail(ctx, parts[0])
	if err != nil || !auth.CheckPassword(parts[1], user.PasswordHash) {
		return "❌ Invalid email or password"
	}

	if err := store.LinkTelegramChat(ctx, user.ID, chatID); err != nil {
		slog.Error("link failed", "error", err, "chat_id", chatID)
		return "❌ Something went wrong, try again later"
	}
	return fmt.Sprintf("✅ Linked to *%s*", user.Name)
}

// handleAdd parses "/add <description> <amount> [category]" and
// records an expense dated now.
func handleAdd(ctx context.Context, store storage.Storage, chatID int64, args string) string {
	user, err := linkedUser(ctx, store, chatID)
	if err != nil {
		return "❌ " + err.Error()
	}

	parts := strings.Fields(args)
	if len(parts) < 2 {
		return "❌ Use: /add Description Amount [Category]"
	}

	category := "Other"
	amountStr := parts[len(parts)-1]
	descEnd := len(parts) - 1
	if _, convErr := strconv.ParseFloat(amountStr, 64); convErr != nil && len(parts) >= 3 {
		// Trailing word is a category, the amount sits before it.
		category = amountStr
		amountStr = parts[len(parts)-2]
		descEnd = len(parts) - 2
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		return fmt.Sprintf("❌ Invalid amount: %q", amountStr)
	}
	description := strings.Join(parts[:descEnd], " ")
	if description == "" {
		return "❌ Description cannot be empty"
	}

	t := domain.Transaction{
		Text:         description,
		Amount:       amount,
		Type:         domain.TypeExpense,
		Category:     category,
		UserID:       user.ID,
		BillingCycle: domain.CycleMonthly,
	}
	if err := store.CreateTransaction(ctx, &t); err != nil {
		slog.Error("add failed", "error", err, "user_id", user.ID)
		return "❌ Something went wrong, try again later"
	}
	return fmt.Sprintf("✅ Saved: %s — %s %.0f (%s)", t.Text, user.Settings.Currency, t.Amount, t.Category)
}

func handleMonth(ctx context.Context, store storage.Storage, chatID int64) string {
	user, err := linkedUser(ctx, store, chatID)
	if err != nil {
		return "❌ " + err.Error()
	}

	transactions, err := store.ListTransactions(ctx, user.ID)
	if err != nil {
		slog.Error("month summary failed", "error", err, "user_id", user.ID)
		return "❌ Something went wrong, try again later"
	}

	now := time.Now()
	totals := insights.MonthTotals(transactions, now)
	if totals.Count == 0 {
		return "📭 No transactions for " + now.Format("2006-01")
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("📊 *%s*", now.Format("January 2006")))
	lines = append(lines, fmt.Sprintf("Income: %s %.0f", user.Settings.Currency, totals.Income))
	lines = append(lines, fmt.Sprintf("Expenses: %s %.0f", user.Settings.Currency, totals.Expense))
	lines = append(lines, fmt.Sprintf("Net: %s %.0f", user.Settings.Currency, totals.NetBalance))

	categories := insights.CategoryTotals(transactions, now)
	if len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)
		lines = append(lines, "")
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("- %s: %.0f", name, categories[name]))
		}
	}

	for _, tip := range insights.Tips(transactions, user.Settings, now) {
		lines = append(lines, "", "💡 "+tip.Text)
		break
	}
	return strings.Join(lines, "\n")
}
