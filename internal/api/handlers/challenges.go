package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/challengehub/challengehub-backend/internal/api/httpx"
	"github.com/challengehub/challengehub-backend/internal/api/validate"
	"github.com/challengehub/challengehub-backend/internal/middleware"
	"github.com/challengehub/challengehub-backend/internal/models"
	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/services"
)

type ChallengesHandler struct {
	Challenges *services.ChallengeService
}

func NewChallengesHandler(cs *services.ChallengeService) *ChallengesHandler {
	return &ChallengesHandler{Challenges: cs}
}

type createChallengeReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prize       int64  `json:"prize"`
}

// storage failures come back as {message} with a 500, no detail
type storeErrResp struct {
	Message string `json:"message"`
}

func (h *ChallengesHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	var req createChallengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}

	var errs validate.Errs
	if e := validate.Required("title", req.Title); e != nil { errs = append(errs, *e) }
	if e := validate.Required("description", req.Description); e != nil { errs = append(errs, *e) }
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
		return
	}

	c, err := h.Challenges.Create(req.Title, req.Description, req.Prize, uid)
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, storeErrResp{Message: "Failed to create challenge"})
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *ChallengesHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.Challenges.List()
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, storeErrResp{Message: "Failed to fetch challenges"})
		return
	}
	if all == nil {
		all = []models.Challenge{}
	}
	httpx.WriteJSON(w, http.StatusOK, all)
}

func (h *ChallengesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.Challenges.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "challenge not found", nil)
			return
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, storeErrResp{Message: "Failed to fetch challenges"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}
