// internal/insights/insights_test.go
package insights

import (
	"testing"
	"time"

	"smartspend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func expense(amount float64, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		Text:     "test",
		Amount:   amount,
		Type:     domain.TypeExpense,
		Category: category,
		Date:     date,
	}
}

func income(amount float64, date time.Time) domain.Transaction {
	return domain.Transaction{
		Text:   "salary",
		Amount: amount,
		Type:   domain.TypeIncome,
		Date:   date,
	}
}

func TestCategoryTotals(t *testing.T) {
	transactions := []domain.Transaction{
		expense(100, "Food", now),
		expense(50, "Food", now.Add(-24*time.Hour)),
		expense(30, "Transport", now),
	}

	totals := CategoryTotals(transactions, now)

	assert.Equal(t, map[string]float64{"Food": 150, "Transport": 30}, totals)

	// Sum of category totals equals the sum of all expense amounts.
	var sum float64
	for _, v := range totals {
		sum += v
	}
	assert.Equal(t, 180.0, sum)
}

func TestCategoryTotalsSkipsIncomeAndOtherMonths(t *testing.T) {
	transactions := []domain.Transaction{
		expense(100, "Food", now),
		expense(999, "Food", now.AddDate(0, -1, 0)), // previous month
		income(5000, now),
	}

	totals := CategoryTotals(transactions, now)
	assert.Equal(t, map[string]float64{"Food": 100}, totals)
}

func TestCategoryTotalsEmptyCategoryFallsBackToOther(t *testing.T) {
	totals := CategoryTotals([]domain.Transaction{expense(10, "", now)}, now)
	assert.Equal(t, map[string]float64{"Other": 10}, totals)
}

func TestMonthTotals(t *testing.T) {
	transactions := []domain.Transaction{
		income(1000, now),
		expense(300, "Food", now),
		expense(200, "Bills", now.AddDate(0, -2, 0)), // outside month
	}

	totals := MonthTotals(transactions, now)
	assert.Equal(t, 1000.0, totals.Income)
	assert.Equal(t, 300.0, totals.Expense)
	assert.Equal(t, 700.0, totals.NetBalance)
	assert.Equal(t, 2, totals.Count)
}

func TestWeeklyTrendNeutralOnZeroPriorWindow(t *testing.T) {
	// Any current-week spend with an empty prior window must be
	// neutral, never a division by zero.
	for _, amount := range []float64{0, 1, 12345} {
		var transactions []domain.Transaction
		if amount > 0 {
			transactions = append(transactions, expense(amount, "Food", now.Add(-48*time.Hour)))
		}
		trend := WeeklyTrend(transactions, now)
		assert.Equal(t, TrendNeutral, trend.Direction)
		assert.Equal(t, 0.0, trend.Pct)
	}
}

func TestWeeklyTrendUp(t *testing.T) {
	transactions := []domain.Transaction{
		expense(150, "Food", now.Add(-2*24*time.Hour)),  // this week
		expense(100, "Food", now.Add(-10*24*time.Hour)), // last week
	}
	trend := WeeklyTrend(transactions, now)
	assert.Equal(t, TrendUp, trend.Direction)
	assert.Equal(t, 50.0, trend.Pct)
}

func TestWeeklyTrendDown(t *testing.T) {
	transactions := []domain.Transaction{
		expense(200, "Food", now.Add(-10*24*time.Hour)),
	}
	trend := WeeklyTrend(transactions, now)
	assert.Equal(t, TrendDown, trend.Direction)
	assert.Equal(t, 100.0, trend.Pct)
}

func TestForecastThreeMonthAverage(t *testing.T) {
	// 100 per month over the trailing 3 calendar months:
	// round(300 / 3 * 1.05) = 105, few occurrences -> Stable.
	transactions := []domain.Transaction{
		expense(100, "Food", now.AddDate(0, -2, 0)),
		expense(100, "Food", now.AddDate(0, -1, 0)),
		expense(100, "Food", now.AddDate(0, 0, -1)),
	}

	forecasts := Forecast(transactions, now)
	require.Len(t, forecasts, 1)
	assert.Equal(t, "Food", forecasts[0].Category)
	assert.Equal(t, 105.0, forecasts[0].Predicted)
	assert.Equal(t, "Stable", forecasts[0].Insight)
}

func TestForecastHighActivity(t *testing.T) {
	var transactions []domain.Transaction
	for i := 0; i < 6; i++ {
		transactions = append(transactions, expense(50, "Transport", now.AddDate(0, 0, -i)))
	}

	forecasts := Forecast(transactions, now)
	require.Len(t, forecasts, 1)
	assert.Equal(t, "High Activity", forecasts[0].Insight)
}

func TestForecastIgnoresOldAndIncome(t *testing.T) {
	transactions := []domain.Transaction{
		expense(100, "Food", now.AddDate(0, -6, 0)), // outside window
		income(100, now),
	}
	assert.Empty(t, Forecast(transactions, now))
}

func TestBadgesAllUnlocked(t *testing.T) {
	transactions := []domain.Transaction{
		income(100000, now),
		expense(5000, "Food", now),
		expense(5000, "Bills", now),
		expense(5000, "Transport", now),
		expense(2000, "Health", now),
		expense(3000, "Shopping", now),
	}

	badges := Badges(transactions, 50000, now)
	require.Len(t, badges, 5)
	for _, b := range badges {
		assert.True(t, b.Unlocked, "badge %s should be unlocked", b.ID)
	}
}

func TestBadgesAllLocked(t *testing.T) {
	transactions := []domain.Transaction{
		expense(1000, "Food", now),
	}

	badges := Badges(transactions, 50000, now)
	require.Len(t, badges, 5)
	for _, b := range badges {
		assert.False(t, b.Unlocked, "badge %s should be locked", b.ID)
	}
}

func TestTipsTopCategoryOver40Pct(t *testing.T) {
	transactions := []domain.Transaction{
		expense(150, "Food", now),
		expense(30, "Transport", now),
	}

	tips := Tips(transactions, domain.DefaultSettings(), now)
	found := false
	for _, tip := range tips {
		if tip.Kind == "top-category" {
			found = true
			assert.Contains(t, tip.Text, "Food")
		}
	}
	assert.True(t, found, "expected a top-category tip")
}

func TestTipsFallbackWhenNothingFires(t *testing.T) {
	tips := Tips(nil, domain.DefaultSettings(), now)
	require.Len(t, tips, 1)
	assert.Equal(t, "balanced", tips[0].Kind)
}

func TestTipsOverspend(t *testing.T) {
	transactions := []domain.Transaction{
		income(100, now),
		expense(500, "Food", now),
	}

	tips := Tips(transactions, domain.DefaultSettings(), now)
	found := false
	for _, tip := range tips {
		if tip.Kind == "overspend" {
			found = true
			assert.Contains(t, tip.Text, "400")
		}
	}
	assert.True(t, found, "expected an overspend tip")
}
