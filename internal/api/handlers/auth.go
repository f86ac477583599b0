// internal/api/handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/challengehub/challengehub-backend/internal/api/httpx"
	"github.com/challengehub/challengehub-backend/internal/api/validate"
	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResp struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // seconds
	Status       string   `json:"status"`
	User         userResp `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}

	// self-signup can only create developer or client accounts
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleDeveloper
	}

	var errs validate.Errs
	if e := validate.Required("name", req.Name); e != nil { errs = append(errs, *e) }
	if e := validate.Required("email", req.Email); e != nil { errs = append(errs, *e) }
	if e := validate.Email("email", req.Email); e != nil { errs = append(errs, *e) }
	if e := validate.MinLen("password", req.Password, 6); e != nil { errs = append(errs, *e) }
	if role != models.RoleDeveloper && role != models.RoleClient {
		errs = append(errs, validate.ErrField{Field: "role", Msg: "must be developer or client"})
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
		return
	}

	u, err := h.Users.Register(req.Name, req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "email_taken", err.Error(), nil)
		case errors.Is(err, services.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}

	res, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResp{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    int64(time.Until(res.ExpiresAt).Seconds()),
		Status:       "success",
		User: userResp{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
			Role:  string(res.User.Role),
		},
	})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request", nil)
		return
	}
	res, err := h.Users.Refresh(req.RefreshToken)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "invalid refresh token", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResp{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    int64(time.Until(res.ExpiresAt).Seconds()),
		Status:       "success",
		User: userResp{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
			Role:  string(res.User.Role),
		},
	})
}
