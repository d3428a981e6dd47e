package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventsnow/backend/internal/api/middleware"
	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/logutil"
	"github.com/eventsnow/backend/internal/service"
	"github.com/eventsnow/backend/internal/utils"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

type UserResponse struct {
	User *domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var fields domain.FieldErrors
		switch {
		case errors.As(err, &fields):
			utils.WriteError(w, http.StatusBadRequest, fields...)
		case errors.Is(err, domain.ErrDuplicateAccount):
			utils.WriteError(w, http.StatusBadRequest, "user already exists")
		default:
			logger := logutil.GetOrDefault(r.Context())
			logger.Error().Err(err).Msg("register failed")
			utils.WriteError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, MessageResponse{Msg: "registration successful"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.accounts.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var fields domain.FieldErrors
		switch {
		case errors.As(err, &fields):
			utils.WriteError(w, http.StatusBadRequest, fields...)
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		default:
			logger := logutil.GetOrDefault(r.Context())
			logger.Error().Err(err).Msg("login failed")
			utils.WriteError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, LoginResponse{Msg: "login successful", Token: token})
}

// Me returns the caller's canonical user record. The token only proves
// identity; the record itself comes from the store so it is current.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.accounts.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.WriteError(w, http.StatusBadRequest, "user data not found")
			return
		}
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("fetch current user failed")
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, UserResponse{User: user})
}
