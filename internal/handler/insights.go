// internal/handler/insights.go
package handler

import (
	"net/http"
	"time"

	"smartspend/internal/insights"

	"github.com/gin-gonic/gin"
)

// PredictBudget serves the naive per-category forecast: trailing
// 3-month average spend with a 5% buffer.
func (h *Handler) PredictBudget(c *gin.Context) {
	userID := c.Param("userId")
	transactions, err := h.store.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, "PredictBudget", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":   userID,
		"forecast": insights.Forecast(transactions, time.Now()),
	})
}

// Summary serves the current-month dashboard aggregates in one shot:
// totals, per-category spend, weekly trend, badges and insight tips.
func (h *Handler) Summary(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, "Summary", err)
		return
	}
	transactions, err := h.store.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, "Summary", err)
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"userId":         userID,
		"totals":         insights.MonthTotals(transactions, now),
		"categoryTotals": insights.CategoryTotals(transactions, now),
		"weeklyTrend":    insights.WeeklyTrend(transactions, now),
		"badges":         insights.Badges(transactions, user.Settings.SavingGoal, now),
		"tips":           insights.Tips(transactions, user.Settings, now),
	})
}
