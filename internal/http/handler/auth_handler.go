package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/auth"
	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a signed session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.AuthResponseDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if err != service.ErrInvalidCredentials {
			h.logger.Error("login failed", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Register godoc
// @Summary Register a user account
// @Description Create a user. Role defaults to user when omitted.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Account details"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		if err != service.ErrEmailTaken {
			h.logger.Error("registration failed", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Me godoc
// @Summary Current user
// @Description Get the account behind the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.UserDTO
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userCtx.UserID)
	if err != nil {
		if err != service.ErrUserNotFound {
			h.logger.Error("failed to load current user", zap.Error(err))
		}
		respondServiceError(w, err, "Failed to load user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
