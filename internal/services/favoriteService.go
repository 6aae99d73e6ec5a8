package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"gxprime/internal/favorites"
	"gxprime/internal/metrics"
	"gxprime/internal/models"
	"gxprime/internal/repositories"
)

type FavoriteService interface {
	Toggle(ctx context.Context, id string) models.FavoriteStatus
	Status(ctx context.Context, id string) models.FavoriteStatus
	// ListFavoriteAssets resolves the favorite ids against the catalog.
	// Ids pointing at since-removed assets are inert and dropped here.
	ListFavoriteAssets(ctx context.Context) []models.Asset
}

type favoriteServiceImpl struct {
	store     favorites.Store
	assetRepo repositories.AssetRepository
}

func NewFavoriteService(store favorites.Store, assetRepo repositories.AssetRepository) FavoriteService {
	return &favoriteServiceImpl{store: store, assetRepo: assetRepo}
}

func (s *favoriteServiceImpl) Toggle(ctx context.Context, id string) models.FavoriteStatus {
	favorite := s.store.Toggle(id)

	state := "removed"
	if favorite {
		state = "added"
	}
	metrics.FavoriteTogglesTotal.WithLabelValues(state).Inc()
	log.Info().Str("asset_id", id).Bool("favorite", favorite).Msg("Favorite toggled")

	return models.FavoriteStatus{ID: id, Favorite: favorite}
}

func (s *favoriteServiceImpl) Status(ctx context.Context, id string) models.FavoriteStatus {
	return models.FavoriteStatus{ID: id, Favorite: s.store.IsFavorite(id)}
}

func (s *favoriteServiceImpl) ListFavoriteAssets(ctx context.Context) []models.Asset {
	ids := s.store.List()

	assets := make([]models.Asset, 0, len(ids))
	for _, id := range ids {
		asset, err := s.assetRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrAssetNotFound) {
				log.Debug().Str("asset_id", id).Msg("Skipping stale favorite id")
				continue
			}
			log.Error().Err(err).Str("asset_id", id).Msg("Error resolving favorite id")
			continue
		}
		assets = append(assets, decorate(*asset))
	}
	return assets
}
