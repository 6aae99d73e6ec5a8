package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"gxprime/internal/repositories"
	"gxprime/internal/services"
	"gxprime/internal/utils"
)

type AssetHandler struct {
	service      services.AssetService
	shareService services.ShareService
}

func NewAssetHandler(service services.AssetService, shareService services.ShareService) *AssetHandler {
	return &AssetHandler{service: service, shareService: shareService}
}

// GetAssets serves the filtered catalog view. An empty result is a normal
// response with count 0, not an error.
func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAssets(r.Context(), r)
	if err != nil {
		log.Error().Err(err).Msg("Error getting assets from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (h *AssetHandler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return
	}

	asset, err := h.service.GetAssetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			utils.SendJSONError(w, err.Error(), http.StatusNotFound)
		} else {
			log.Error().Err(err).Str("asset_id", id).Msg("Error getting asset by ID from service")
			utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) GetShareLinks(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return
	}

	asset, err := h.service.GetAssetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			utils.SendJSONError(w, err.Error(), http.StatusNotFound)
		} else {
			log.Error().Err(err).Str("asset_id", id).Msg("Error getting asset for share links")
			utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.shareService.BuildShareLinks(r.Context(), *asset))
}
