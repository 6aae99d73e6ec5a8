// Package catalog loads the static asset snapshot and exposes it read-only
// for the lifetime of the process. The snapshot is rebuilt out-of-band by
// the deploy pipeline; nothing here mutates it.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"gxprime/internal/models"
)

// ErrDataUnavailable wraps any failure to read or parse the snapshot source.
// Callers render an empty state on it rather than crashing.
var ErrDataUnavailable = errors.New("catalog data unavailable")

const defaultAssetsPath = "data/assets.json"

type Service interface {
	Health() map[string]string
	Assets() []models.Asset
}

type service struct {
	assets []models.Asset
}

// LegacyCategories maps historical English category labels to the canonical
// Japanese set. Applied at load time so render paths never see them.
var LegacyCategories = map[string]string{
	"Mobility":       "モビリティ",
	"Energy":         "エネルギー",
	"Tech":           "テクノロジー",
	"Smart City":     "スマートシティ",
	"SmartCity":      "スマートシティ",
	"Resource":       "資源・バイオ",
	"Hydrogen":       "エネルギー",
	"Infrastructure": "スマートシティ",
	"Architecture":   "スマートシティ",
	"Eco-Life":       "エコ・ライフスタイル",
	"Eco Life":       "エコ・ライフスタイル",
}

// NormalizeCategory trims a raw category value, rewrites legacy labels and
// defaults empty values to その他.
func NormalizeCategory(raw string) string {
	c := strings.TrimSpace(raw)
	if mapped, ok := LegacyCategories[c]; ok {
		return mapped
	}
	if c == "" {
		return "その他"
	}
	return c
}

// New loads the snapshot from ASSETS_PATH (default data/assets.json). A
// missing or malformed source degrades to an empty catalog: the API keeps
// serving well-formed empty states instead of refusing to start.
func New() Service {
	path := os.Getenv("ASSETS_PATH")
	if path == "" {
		path = defaultAssetsPath
	}

	s, err := Load(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to load asset catalog, serving empty snapshot")
		return &service{}
	}
	return s
}

// Load reads and validates the snapshot at path.
func Load(path string) (Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	var entries []models.Asset
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	assets := make([]models.Asset, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		entry.ID = strings.TrimSpace(entry.ID)
		entry.Title = strings.TrimSpace(entry.Title)

		if entry.ID == "" || entry.Title == "" {
			log.Warn().Int("index", i).Str("id", entry.ID).Msg("Skipping asset entry missing id or title")
			continue
		}
		if seen[entry.ID] {
			log.Warn().Str("id", entry.ID).Msg("Skipping asset entry with duplicate id")
			continue
		}
		seen[entry.ID] = true

		entry.Category = NormalizeCategory(entry.Category)
		assets = append(assets, entry)
	}

	log.Info().Str("path", path).Int("count", len(assets)).Msg("Asset catalog loaded")
	return &service{assets: assets}, nil
}

// Assets returns the full ordered snapshot. Callers treat it as immutable.
func (s *service) Assets() []models.Asset {
	return s.assets
}

func (s *service) Health() map[string]string {
	return map[string]string{
		"message": "It's healthy",
		"assets":  strconv.Itoa(len(s.assets)),
	}
}
