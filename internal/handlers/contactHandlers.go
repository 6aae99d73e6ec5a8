package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"gxprime/internal/models"
	"gxprime/internal/services"
	"gxprime/internal/utils"
)

type ContactHandler struct {
	service services.ContactService
}

func NewContactHandler(service services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for SubmitContact")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Submit(r.Context(), req); err != nil {
		var invalid *services.ErrInvalidContactRequest
		if errors.As(err, &invalid) {
			utils.SendJSONError(w, invalid.Reason, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Error submitting contact request via service")
		utils.SendJSONError(w, "failed to submit contact request", http.StatusBadGateway)
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{"message": "accepted"})
}
