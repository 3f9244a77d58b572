package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"petrolog/entities"
	"petrolog/pkg/auth"
	"petrolog/pkg/auth/controller"
	repo "petrolog/pkg/auth/repository"
)

type AuthCtrl struct {
	repo   repo.UserRepository
	secret string
}

func New(repo repo.UserRepository, secret string) controller.AuthController {
	return &AuthCtrl{repo: repo, secret: secret}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username, email and password are required"})
	}
	if u, _ := h.repo.FindByUsername(req.Username); u != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username already taken"})
	}
	if u, _ := h.repo.FindByEmail(req.Email); u != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email already registered"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	role := req.Role
	if role == "" {
		role = "student"
	}
	u := &entities.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.repo.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"user": u})
}

type loginReq struct {
	Username string `json:"username"` // username or email
	Password string `json:"password"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.repo.FindByLogin(req.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
	}

	now := time.Now()
	u.LastLogin = &now
	_ = h.repo.Update(u)

	token, err := auth.SignToken(h.secret, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"access_token": token, "user": u})
}

func (h *AuthCtrl) Profile(c echo.Context) error {
	uid := c.Get("uid").(uint)
	u, err := h.repo.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}

type profileReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *AuthCtrl) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(uint)
	u, err := h.repo.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Email != nil {
		if other, _ := h.repo.FindByEmail(*req.Email); other != nil && other.ID != u.ID {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "email already in use"})
		}
		u.Email = strings.ToLower(*req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		u.PasswordHash = string(hash)
	}
	if err := h.repo.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}
