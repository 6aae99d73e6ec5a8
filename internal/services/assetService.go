package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"gxprime/internal/describe"
	"gxprime/internal/metrics"
	"gxprime/internal/models"
	"gxprime/internal/query"
	"gxprime/internal/repositories"
	"gxprime/internal/resolver"
)

type AssetService interface {
	GetAssets(ctx context.Context, r *http.Request) (models.SearchResult, error)
	GetAssetByID(ctx context.Context, id string) (*models.Asset, error)
	GetCategoryCounts(ctx context.Context) []models.FacetCount
	GetTagCounts(ctx context.Context) []models.FacetCount
}

type assetServiceImpl struct {
	assetRepo repositories.AssetRepository
}

func NewAssetService(assetRepo repositories.AssetRepository) AssetService {
	return &assetServiceImpl{assetRepo: assetRepo}
}

// GetAssets narrows the snapshot by the request's category, tag and q
// parameters, in that order. category and tag are exact matches for pinned
// index pages; q is the permissive free-text filter.
func (s *assetServiceImpl) GetAssets(ctx context.Context, r *http.Request) (models.SearchResult, error) {
	assets := s.assetRepo.FindAll()

	if category := r.URL.Query().Get("category"); category != "" {
		assets = query.FilterByCategory(assets, category)
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		assets = query.FilterByTag(assets, tag)
	}

	q := r.URL.Query().Get("q")
	if query.Normalize(q) != "" {
		metrics.SearchesTotal.Inc()
	}

	result := query.Filter(assets, q)
	for i := range result.Items {
		result.Items[i] = decorate(result.Items[i])
	}

	log.Debug().Str("q", q).Int("count", result.Count).Msg("Assets retrieved")
	return result, nil
}

func (s *assetServiceImpl) GetAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.assetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			metrics.AssetNotFoundTotal.Inc()
			log.Debug().Str("asset_id", id).Msg("Asset not found")
		}
		return nil, err
	}

	metrics.AssetViewsTotal.Inc()
	decorated := decorate(*asset)
	return &decorated, nil
}

func (s *assetServiceImpl) GetCategoryCounts(ctx context.Context) []models.FacetCount {
	return query.AggregateCounts(s.assetRepo.FindAll(), query.ByCategory)
}

func (s *assetServiceImpl) GetTagCounts(ctx context.Context) []models.FacetCount {
	return query.AggregateCounts(s.assetRepo.FindAll(), query.ByTag)
}

// decorate fills the derived fields every surface needs: the resolved media
// URL and a description guaranteed to be non-trivial.
func decorate(asset models.Asset) models.Asset {
	asset.URL = resolver.Resolve(asset)
	asset.Description = describe.Generate(asset)
	return asset
}
