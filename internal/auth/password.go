package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	sharedauth "resume-editor-backend/internal/shared/auth"
	"resume-editor-backend/internal/shared/server/respond"
	"resume-editor-backend/internal/users"
)

const minPasswordLength = 8

// PasswordService handles email+password signup, login and session
// inspection.
type PasswordService struct {
	Users users.Repo
}

// NewPasswordService builds a PasswordService.
func NewPasswordService(repo users.Repo) *PasswordService {
	return &PasswordService{Users: repo}
}

// RegisterRoutes attaches password auth routes.
func (s *PasswordService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", s.signup)
	rg.POST("/auth/login", s.login)
	rg.GET("/auth/session", s.session)
	rg.POST("/auth/logout", s.logout)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func (s *PasswordService) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a valid email is required", nil)
		return
	}
	if len(req.Password) < minPasswordLength {
		respond.Error(c, http.StatusBadRequest, "validation_error", "password must be at least 8 characters", nil)
		return
	}

	ctx := c.Request.Context()
	if _, err := s.Users.GetByEmail(ctx, req.Email); err == nil {
		respond.Error(c, http.StatusConflict, "email_taken", "an account with this email already exists", nil)
		return
	} else if !errors.Is(err, users.ErrNotFound) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create account", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create account", nil)
		return
	}

	user := users.User{
		ID:           "local:" + uuid.NewString(),
		Email:        req.Email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
	}
	if err := s.Users.Upsert(ctx, user); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create account", nil)
		return
	}

	s.respondSession(c, http.StatusCreated, user)
}

func (s *PasswordService) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}

	user, err := s.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign in", nil)
		return
	}
	if user.PasswordHash == "" {
		// OAuth-only account.
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
		return
	}

	s.respondSession(c, http.StatusOK, user)
}

func (s *PasswordService) session(c *gin.Context) {
	claims, ok := bearerClaims(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "no active session", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"userId": claims.Sub,
		"email":  claims.Email,
		"name":   claims.Name,
		"exp":    claims.Exp,
	})
}

func (s *PasswordService) logout(c *gin.Context) {
	// Sessions are stateless bearer tokens; logout is client-side
	// discard. The endpoint exists so the client flow has a hook.
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (s *PasswordService) respondSession(c *gin.Context, status int, user users.User) {
	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:     user.ID,
		Email:   user.Email,
		Name:    user.FullName,
		Picture: user.PictureURL,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}
	respond.JSON(c, status, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
		},
	})
}

func bearerClaims(c *gin.Context) (sharedauth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return sharedauth.Claims{}, false
	}
	claims, err := sharedauth.VerifyJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return sharedauth.Claims{}, false
	}
	return claims, true
}
