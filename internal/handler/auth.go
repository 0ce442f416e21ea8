package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/repository"
	"github.com/NathaNJOY-191/IN-OUT/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}
type profilePart struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
type authResp struct {
	Token   string      `json:"token"`
	User    userPart    `json:"user"`
	Profile profilePart `json:"profile"`
}

// Signup creates a user and returns a session token immediately.  A
// duplicate email yields 400 so callers cannot probe which emails are
// registered versus merely malformed inputs.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, strings.TrimSpace(req.FullName), h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role, h.Cfg.TokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, authResp{
		Token:   tok.Token,
		User:    userPart{ID: u.ID, Email: u.Email},
		Profile: profilePart{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role},
	})
}

// Signin verifies credentials and returns a fresh session token.  Unknown
// email and wrong password produce the identical response so neither check
// is disclosed.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role, h.Cfg.TokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, authResp{
		Token:   tok.Token,
		User:    userPart{ID: u.ID, Email: u.Email},
		Profile: profilePart{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role},
	})
}

// Me returns the authenticated user's identity and profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":    userPart{ID: u.ID, Email: u.Email},
		"profile": profilePart{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role},
	})
}
