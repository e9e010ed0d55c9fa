// internal/handler/transaction.go
package handler

import (
	"net/http"
	"time"

	"smartspend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TransactionRequest struct {
	Text            string     `json:"text" validate:"required,notblank"`
	Amount          float64    `json:"amount" validate:"required,finite,gt=0"`
	Category        string     `json:"category" validate:"required,notblank"`
	UserID          string     `json:"userId"`
	Type            string     `json:"type" validate:"txkind"`
	IsRecurring     bool       `json:"isRecurring"`
	BillingCycle    string     `json:"billingCycle" validate:"billingcycle"`
	NextBillingDate *time.Time `json:"nextBillingDate"`
	Mood            string     `json:"mood" validate:"mood"`
	Date            *time.Time `json:"date"`
}

// toDomain applies the defaults of the record schema: kind falls back
// to expense, billing cycle to monthly.
func (r TransactionRequest) toDomain() domain.Transaction {
	t := domain.Transaction{
		Text:         r.Text,
		Amount:       r.Amount,
		Type:         domain.TransactionType(r.Type),
		Category:     r.Category,
		UserID:       r.UserID,
		IsRecurring:  r.IsRecurring,
		BillingCycle: domain.BillingCycle(r.BillingCycle),
		Mood:         r.Mood,
	}
	if t.Type == "" {
		t.Type = domain.TypeExpense
	}
	if t.BillingCycle == "" {
		t.BillingCycle = domain.CycleMonthly
	}
	if r.IsRecurring {
		t.NextBillingDate = r.NextBillingDate
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	return t
}

// List returns every transaction owned by the user, in storage order.
func (h *Handler) List(c *gin.Context) {
	transactions, err := h.store.ListTransactions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondStorageError(c, "List", err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: userId is required"})
		return
	}

	t := req.toDomain()
	if err := h.store.CreateTransaction(c.Request.Context(), &t); err != nil {
		respondStorageError(c, "Create", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := req.toDomain()
	t.ID = c.Param("id")
	updated, err := h.store.UpdateTransaction(c.Request.Context(), &t)
	if err != nil {
		respondStorageError(c, "Update", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondStorageError(c, "Delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense Deleted"})
}
