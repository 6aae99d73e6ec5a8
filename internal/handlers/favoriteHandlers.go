package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"gxprime/internal/services"
	"gxprime/internal/utils"
)

type FavoriteHandler struct {
	service services.FavoriteService
}

func NewFavoriteHandler(service services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	assets := h.service.ListFavoriteAssets(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, assets)
}

func (h *FavoriteHandler) GetFavoriteStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.service.Status(r.Context(), id))
}

// ToggleFavorite flips membership for an id. Toggling an id that is not in
// the catalog is allowed; such favorites are simply dropped at read time.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.service.Toggle(r.Context(), id))
}
