package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"gxprime/internal/services"
	"gxprime/internal/utils"
)

// FacetHandler serves the category and tag index views with per-value
// asset counts, sorted by descending count.
type FacetHandler struct {
	service services.AssetService
}

func NewFacetHandler(service services.AssetService) *FacetHandler {
	return &FacetHandler{service: service}
}

func (h *FacetHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	counts := h.service.GetCategoryCounts(r.Context())
	log.Debug().Int("count", len(counts)).Msg("Category counts retrieved")
	utils.RespondWithJSON(w, http.StatusOK, counts)
}

func (h *FacetHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	counts := h.service.GetTagCounts(r.Context())
	log.Debug().Int("count", len(counts)).Msg("Tag counts retrieved")
	utils.RespondWithJSON(w, http.StatusOK, counts)
}
