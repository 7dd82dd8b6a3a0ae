package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	// Middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Goods endpoints
	api.HandleFunc("/goods/list", h.GetAllGoods).Methods(http.MethodGet)
	api.HandleFunc("/goods/type", h.GetGoodsByType).Methods(http.MethodGet)
	api.HandleFunc("/good", h.GetSingleGood).Methods(http.MethodGet)
	api.HandleFunc("/good/create", h.AddSingleGood).Methods(http.MethodPost)
	api.HandleFunc("/goods/create", h.AddBulkGoods).Methods(http.MethodPost)
	api.HandleFunc("/good/archive", h.ArchiveGood).Methods(http.MethodPatch)
	api.HandleFunc("/goods/archive", h.ArchiveMultipleGoods).Methods(http.MethodPatch)
	api.HandleFunc("/good/update", h.UpdateGood).Methods(http.MethodPatch)

	return r
}
