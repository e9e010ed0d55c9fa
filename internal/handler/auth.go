// internal/handler/auth.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"smartspend/internal/auth"
	"smartspend/internal/domain"
	"smartspend/internal/storage"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store  storage.UserStorage
	tokens *auth.TokenService
}

func NewAuthHandler(store storage.UserStorage, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Settings:     domain.DefaultSettings(),
		Avatar:       "👩‍💻",
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		respondStorageError(c, "Signup", err)
		return
	}

	slog.Info("user created", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "User Created"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondStorageError(c, "Login", err)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		slog.Error("token generation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "name": user.Name},
	})
}
