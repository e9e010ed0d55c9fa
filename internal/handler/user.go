// internal/handler/user.go
package handler

import (
	"fmt"
	"net/http"

	"smartspend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UpdateSettingsRequest struct {
	Settings struct {
		Currency      string  `json:"currency" validate:"required,notblank"`
		DarkMode      bool    `json:"darkMode"`
		SavingGoal    float64 `json:"savingGoal" validate:"finite,gte=0"`
		OverallBudget float64 `json:"overallBudget" validate:"finite,gte=0"`
	} `json:"settings" validate:"required"`
}

type UpdateCategoriesRequest struct {
	CustomCategories []string `json:"customCategories" validate:"required,dive,notblank"`
}

type UpdateBudgetsRequest struct {
	Budgets map[string]float64 `json:"budgets" validate:"required,dive,finite,gte=0"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStorageError(c, "GetUser", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UpdateSettings(c.Request.Context(), c.Param("id"), domain.Settings{
		Currency:      req.Settings.Currency,
		DarkMode:      req.Settings.DarkMode,
		SavingGoal:    req.Settings.SavingGoal,
		OverallBudget: req.Settings.OverallBudget,
	})
	if err != nil {
		respondStorageError(c, "UpdateSettings", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateCategories(c *gin.Context) {
	var req UpdateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UpdateCategories(c.Request.Context(), c.Param("id"), req.CustomCategories)
	if err != nil {
		respondStorageError(c, "UpdateCategories", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateBudgets replaces the budget map. Keys are checked against the
// user's known category set so a typo cannot create an orphan budget.
func (h *Handler) UpdateBudgets(c *gin.Context) {
	var req UpdateBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStorageError(c, "UpdateBudgets", err)
		return
	}
	for cat := range req.Budgets {
		if !user.KnowsCategory(cat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid input: unknown budget category %q", cat)})
			return
		}
	}

	user, err = h.store.UpdateBudgets(c.Request.Context(), user.ID, req.Budgets)
	if err != nil {
		respondStorageError(c, "UpdateBudgets", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	user, err := h.store.UpdateProfile(c.Request.Context(), c.Param("id"), req.Name, req.Avatar)
	if err != nil {
		respondStorageError(c, "UpdateProfile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
