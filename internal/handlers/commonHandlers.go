package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"gxprime/internal/catalog"
)

type CommonHandler struct {
	catalog catalog.Service
}

func NewCommonHandler(c catalog.Service) *CommonHandler {
	return &CommonHandler{catalog: c}
}

func (h *CommonHandler) HelloWorldHandler(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "GX Prime Visuals API"

	jsonResp, err := json.Marshal(resp)
	if err != nil {
		log.Fatal().Err(err).Msg("Error marshalling JSON response for HelloWorldHandler")
	}

	_, _ = w.Write(jsonResp)
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResp, err := json.Marshal(h.catalog.Health())

	if err != nil {
		log.Fatal().Err(err).Msg("Error marshalling JSON response for HealthHandler")
	}

	_, _ = w.Write(jsonResp)
}
