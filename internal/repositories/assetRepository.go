package repositories

import (
	"errors"

	"gxprime/internal/catalog"
	"gxprime/internal/models"
)

// ErrAssetNotFound signals a lookup for an id absent from the snapshot. A
// normal condition (stale bookmark, removed asset), mapped to 404 upstream.
var ErrAssetNotFound = errors.New("asset not found")

type AssetRepository interface {
	FindAll() []models.Asset
	FindByID(id string) (*models.Asset, error)
}

type assetRepositoryImpl struct {
	catalog catalog.Service
	byID    map[string]models.Asset
}

func NewAssetRepository(c catalog.Service) AssetRepository {
	byID := make(map[string]models.Asset, len(c.Assets()))
	for _, asset := range c.Assets() {
		byID[asset.ID] = asset
	}
	return &assetRepositoryImpl{catalog: c, byID: byID}
}

func (r *assetRepositoryImpl) FindAll() []models.Asset {
	return r.catalog.Assets()
}

func (r *assetRepositoryImpl) FindByID(id string) (*models.Asset, error) {
	asset, ok := r.byID[id]
	if !ok {
		return nil, ErrAssetNotFound
	}
	return &asset, nil
}
