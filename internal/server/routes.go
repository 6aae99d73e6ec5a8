package server

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gxprime/internal/handlers"
	"gxprime/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	prom := middlewares.NewPrometheusMiddleware()
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(prom.Instrument)

	ch := handlers.NewCommonHandler(s.catalog)
	r.HandleFunc("/", ch.HelloWorldHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	s.registerAssetRoutes(r)
	s.registerFacetRoutes(r)
	s.registerFavoriteRoutes(r)
	s.registerContactRoutes(r)
	s.registerImageRoutes(r)

	return r
}

func (s *Server) registerAssetRoutes(r *mux.Router) {
	ah := handlers.NewAssetHandler(s.assetService, s.shareService)

	r.HandleFunc("/api/assets", ah.GetAssets).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/assets/{id}", ah.GetAssetByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/assets/{id}/share", ah.GetShareLinks).Methods("GET", "OPTIONS")
}

func (s *Server) registerFacetRoutes(r *mux.Router) {
	fh := handlers.NewFacetHandler(s.assetService)

	r.HandleFunc("/api/categories", fh.GetCategories).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tags", fh.GetTags).Methods("GET", "OPTIONS")
}

func (s *Server) registerFavoriteRoutes(r *mux.Router) {
	fh := handlers.NewFavoriteHandler(s.favoriteService)

	r.HandleFunc("/api/favorites", fh.GetFavorites).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/favorites/{id}", fh.GetFavoriteStatus).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/favorites/{id}/toggle", fh.ToggleFavorite).Methods("POST", "OPTIONS")
}

func (s *Server) registerContactRoutes(r *mux.Router) {
	ch := handlers.NewContactHandler(s.contactService)

	r.HandleFunc("/api/contact", ch.SubmitContact).Methods("POST", "OPTIONS")
}

// registerImageRoutes serves the media files the resolver points at. The
// directory layout under IMAGES_DIR mirrors the provenance folders (mid,
// niji, GPT, nano, grok).
func (s *Server) registerImageRoutes(r *mux.Router) {
	dir := os.Getenv("IMAGES_DIR")
	if dir == "" {
		dir = "public/assets/images"
	}

	fs := http.StripPrefix("/assets/images/", http.FileServer(http.Dir(dir)))
	r.PathPrefix("/assets/images/").Handler(fs).Methods("GET", "OPTIONS")
}
