package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
	"github.com/sebastien-blain/SOEN390-team-9/internal/service"
)

type Handler struct {
	goodService *service.GoodService
}

func NewHandler(goodService *service.GoodService) *Handler {
	return &Handler{goodService: goodService}
}

func (h *Handler) GetAllGoods(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.goodService.GetAllGoods(r.Context()))
}

func (h *Handler) GetSingleGood(w http.ResponseWriter, r *http.Request) {
	id, err := getId(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, h.goodService.GetSingleGood(r.Context(), id))
}

func (h *Handler) GetGoodsByType(w http.ResponseWriter, r *http.Request) {
	goodType := models.GoodType(r.URL.Query().Get("type"))
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	respondWithJSON(w, http.StatusOK,
		h.goodService.GetGoodsByType(r.Context(), goodType, includeArchived))
}

func (h *Handler) AddSingleGood(w http.ResponseWriter, r *http.Request) {
	var good models.Good
	if err := json.NewDecoder(r.Body).Decode(&good); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	respondWithJSON(w, http.StatusOK, h.goodService.AddSingleGood(r.Context(), &good))
}

func (h *Handler) AddBulkGoods(w http.ResponseWriter, r *http.Request) {
	var goods []*models.Good
	if err := json.NewDecoder(r.Body).Decode(&goods); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	respondWithJSON(w, http.StatusOK, h.goodService.AddBulkGoods(r.Context(), goods))
}

func (h *Handler) ArchiveGood(w http.ResponseWriter, r *http.Request) {
	id, err := getId(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Archive bool `json:"archive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	respondWithJSON(w, http.StatusOK, h.goodService.ArchiveGood(r.Context(), id, req.Archive))
}

func (h *Handler) ArchiveMultipleGoods(w http.ResponseWriter, r *http.Request) {
	var entries []models.ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	respondWithJSON(w, http.StatusOK, h.goodService.ArchiveMultipleGoods(r.Context(), entries))
}

func (h *Handler) UpdateGood(w http.ResponseWriter, r *http.Request) {
	id, err := getId(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var good models.Good
	if err := json.NewDecoder(r.Body).Decode(&good); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	good.ID = id

	respondWithJSON(w, http.StatusOK, h.goodService.UpdateGood(r.Context(), &good))
}

// getId extracts the id query parameter.
func getId(r *http.Request) (int, error) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		return 0, errors.New("id is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("invalid id parameter")
	}

	if id <= 0 {
		return 0, errors.New("id must be a positive number")
	}

	return id, nil
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, models.Fail(message))
}
