// internal/insights/insights.go

// Package insights derives dashboard aggregates from a user's full
// transaction list. Every function is pure: the clock is passed in and
// nothing is persisted.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"smartspend/internal/domain"
)

type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// MonthSummary holds the current-month headline numbers.
type MonthSummary struct {
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	NetBalance float64 `json:"netBalance"`
	Count      int     `json:"count"`
}

// WeeklyTrendResult compares the trailing 7 days of spending against
// the 7 days before that.
type WeeklyTrendResult struct {
	Direction TrendDirection `json:"direction"`
	Pct       float64        `json:"pct"`
}

// CategoryForecast is a naive next-month spend estimate for one
// category: trailing 3-month average with a 5% buffer.
type CategoryForecast struct {
	Category  string  `json:"category"`
	Predicted float64 `json:"predicted"`
	Insight   string  `json:"insight"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type Tip struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func sameMonth(d, now time.Time) bool {
	return d.Year() == now.Year() && d.Month() == now.Month()
}

// currentMonth filters transactions belonging to now's calendar month.
func currentMonth(transactions []domain.Transaction, now time.Time) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range transactions {
		if sameMonth(t.Date, now) {
			out = append(out, t)
		}
	}
	return out
}

// MonthTotals sums income and expense for the current calendar month.
func MonthTotals(transactions []domain.Transaction, now time.Time) MonthSummary {
	var s MonthSummary
	for _, t := range currentMonth(transactions, now) {
		s.Count++
		switch t.Type {
		case domain.TypeIncome:
			s.Income += t.Amount
		case domain.TypeExpense:
			s.Expense += t.Amount
		}
	}
	s.NetBalance = s.Income - s.Expense
	return s
}

// CategoryTotals groups the current month's expenses by category.
// A transaction without a category counts towards "Other".
func CategoryTotals(transactions []domain.Transaction, now time.Time) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range currentMonth(transactions, now) {
		if t.Type != domain.TypeExpense {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = "Other"
		}
		totals[cat] += t.Amount
	}
	return totals
}

// WeeklyTrend reports the percentage change of expense totals between
// the trailing 7 days and the prior 7-day window. A zero prior window
// yields a neutral trend, not a division by zero.
func WeeklyTrend(transactions []domain.Transaction, now time.Time) WeeklyTrendResult {
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)

	var thisWeek, lastWeek float64
	for _, t := range transactions {
		if t.Type != domain.TypeExpense {
			continue
		}
		switch {
		case !t.Date.Before(oneWeekAgo) && !t.Date.After(now):
			thisWeek += t.Amount
		case !t.Date.Before(twoWeeksAgo) && t.Date.Before(oneWeekAgo):
			lastWeek += t.Amount
		}
	}

	if lastWeek == 0 {
		return WeeklyTrendResult{Direction: TrendNeutral, Pct: 0}
	}
	change := (thisWeek - lastWeek) / lastWeek * 100
	direction := TrendDown
	if change > 0 {
		direction = TrendUp
	}
	return WeeklyTrendResult{Direction: direction, Pct: math.Round(math.Abs(change))}
}

// forecastBuffer pads the 3-month average to err on the safe side.
const forecastBuffer = 1.05

// Forecast estimates next-month spend per category from the trailing
// 3 calendar months (the current month and the two before it). This is
// a fixed heuristic, not a model: average × 1.05, rounded. Categories
// with more than 5 transactions in the window are labelled
// "High Activity", the rest "Stable".
func Forecast(transactions []domain.Transaction, now time.Time) []CategoryForecast {
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -2, 0)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range transactions {
		if t.Type != domain.TypeExpense || t.Date.Before(windowStart) || t.Date.After(now) {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = "Other"
		}
		sums[cat] += t.Amount
		counts[cat]++
	}

	forecasts := make([]CategoryForecast, 0, len(sums))
	for cat, sum := range sums {
		insight := "Stable"
		if counts[cat] > 5 {
			insight = "High Activity"
		}
		forecasts = append(forecasts, CategoryForecast{
			Category:  cat,
			Predicted: math.Round(sum / 3 * forecastBuffer),
			Insight:   insight,
		})
	}
	sort.Slice(forecasts, func(i, j int) bool { return forecasts[i].Category < forecasts[j].Category })
	return forecasts
}

// Badges evaluates the gamification predicates against the current
// month. Purely derived, no achievement state is stored.
func Badges(transactions []domain.Transaction, savingGoal float64, now time.Time) []Badge {
	month := currentMonth(transactions, now)
	totals := MonthTotals(transactions, now)

	highRoller := false
	for _, t := range month {
		if t.Type == domain.TypeIncome && t.Amount >= 50000 {
			highRoller = true
			break
		}
	}

	return []Badge{
		{ID: "saver", Name: "Saver Streak", Description: "Net balance is positive.", Unlocked: totals.NetBalance > 0},
		{ID: "warrior", Name: "Budget Warrior", Description: "Expenses < 50% of income.", Unlocked: totals.Income > 0 && totals.Expense < totals.Income*0.5},
		{ID: "high-roller", Name: "High Roller", Description: "Earned > 50k in one go.", Unlocked: highRoller},
		{ID: "power-user", Name: "Power User", Description: "Added > 5 transactions.", Unlocked: len(month) > 5},
		{ID: "goal-crusher", Name: "Goal Crusher", Description: "Hit saving goal!", Unlocked: totals.NetBalance >= savingGoal},
	}
}

// Tips builds the "smart insight" messages shown on the dashboard.
func Tips(transactions []domain.Transaction, settings domain.Settings, now time.Time) []Tip {
	totals := MonthTotals(transactions, now)
	categories := CategoryTotals(transactions, now)
	trend := WeeklyTrend(transactions, now)

	var tips []Tip

	if totals.Expense > 0 && len(categories) > 0 {
		topCat := ""
		topAmount := 0.0
		for cat, amount := range categories {
			if amount > topAmount || (amount == topAmount && cat < topCat) {
				topCat, topAmount = cat, amount
			}
		}
		pct := math.Round(topAmount / totals.Expense * 100)
		if pct > 40 {
			tips = append(tips, Tip{
				Kind: "top-category",
				Text: fmt.Sprintf("Heads up! %s makes up %.0f%% of your spending.", topCat, pct),
			})
		}
	}

	if settings.SavingGoal > 0 {
		progress := totals.NetBalance / settings.SavingGoal * 100
		if progress >= 80 && progress < 100 {
			tips = append(tips, Tip{
				Kind: "goal-progress",
				Text: fmt.Sprintf("So close! You're %.0f%% of the way to your saving goal.", progress),
			})
		}
		if progress < 0 {
			tips = append(tips, Tip{
				Kind: "overspend",
				Text: fmt.Sprintf("Careful! You are exceeding your budget by %s %.0f.", settings.Currency, math.Abs(totals.NetBalance)),
			})
		}
	}

	if trend.Direction != TrendNeutral {
		word := "LESS"
		if trend.Direction == TrendUp {
			word = "MORE"
		}
		tips = append(tips, Tip{
			Kind: "weekly-trend",
			Text: fmt.Sprintf("You spent %.0f%% %s this week compared to last week.", trend.Pct, word),
		})
	}

	if len(tips) == 0 {
		tips = append(tips, Tip{
			Kind: "balanced",
			Text: "Your spending looks balanced this month. Keep it up!",
		})
	}
	return tips
}
