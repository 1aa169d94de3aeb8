package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/middleware"
	"CARRENTAL_BACK-END/internal/models"
	"CARRENTAL_BACK-END/internal/store"
	"CARRENTAL_BACK-END/internal/utils"
)

const minPasswordLength = 8

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users store.UserStore
	cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

func (h *AuthHandler) queryCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.TokenResponse "User created, token issued"
// @Failure 200 {object} dto.ErrorResponse "Validation error or duplicate email"
// @Router /api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || len(req.Password) < minPasswordLength {
		utils.WriteFailure(w, dto.ErrKindValidation, "All fields are required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to hash password")
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.WriteFailure(w, dto.ErrKindConflict, "User already exists")
			return
		}
		log.Printf("register: create user: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to create user")
		return
	}

	token, err := middleware.GenerateToken(user.ID, &h.cfg.JWT)
	if err != nil {
		log.Printf("register: generate token: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to generate token")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 200 {object} dto.ErrorResponse "Unknown email or wrong password"
// @Router /api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteFailure(w, dto.ErrKindValidation, "Email and password are required")
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	user, err := h.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteFailure(w, dto.ErrKindNotFound, "User not found")
			return
		}
		log.Printf("login: get user: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to look up user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteFailure(w, dto.ErrKindAuth, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID, &h.cfg.JWT)
	if err != nil {
		log.Printf("login: generate token: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to generate token")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

// GetUserData returns the authenticated user's record
// @Summary Get user data
// @Description Get the current authenticated user's record
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDataResponse "User record"
// @Failure 200 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/user/data [get]
func (h *AuthHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteFailure(w, dto.ErrKindNotFound, "User not found")
			return
		}
		log.Printf("user data: get user: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to look up user")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserDataResponse{Success: true, User: *user})
}
