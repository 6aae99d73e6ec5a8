// Package query derives filtered views of the catalog snapshot. Matching is
// case-insensitive substring containment OR-ed across fields, intentionally
// permissive for a small, exploratory catalog. Result counts and empty-state
// messaging in callers depend on exactly these semantics; do not replace
// them with tokenized or ranked search.
package query

import (
	"sort"
	"strings"

	"gxprime/internal/models"
)

// GroupBy selects the field AggregateCounts groups on.
type GroupBy int

const (
	ByCategory GroupBy = iota
	ByTag
)

// Normalize lowercases a free-text query, strips one leading # sigil and
// trims surrounding whitespace. An empty result means "match all".
func Normalize(q string) string {
	q = strings.ToLower(q)
	q = strings.TrimPrefix(q, "#")
	return strings.TrimSpace(q)
}

func matches(asset models.Asset, q string) bool {
	if strings.Contains(strings.ToLower(asset.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(asset.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(asset.Category), q) {
		return true
	}
	for _, tag := range asset.Tags {
		if strings.Contains(strings.TrimPrefix(strings.ToLower(tag), "#"), q) {
			return true
		}
	}
	return false
}

// Filter returns the assets matching the free-text query, preserving catalog
// order, together with the result count.
func Filter(catalog []models.Asset, q string) models.SearchResult {
	q = Normalize(q)

	items := make([]models.Asset, 0, len(catalog))
	if q == "" {
		items = append(items, catalog...)
	} else {
		for _, asset := range catalog {
			if matches(asset, q) {
				items = append(items, asset)
			}
		}
	}
	return models.SearchResult{Items: items, Count: len(items)}
}

// FilterByCategory keeps assets whose category equals the given value
// exactly (after trimming). Used by category pages where the value is
// already a known, enumerated label.
func FilterByCategory(catalog []models.Asset, category string) []models.Asset {
	category = strings.TrimSpace(category)

	var items []models.Asset
	for _, asset := range catalog {
		if strings.TrimSpace(asset.Category) == category {
			items = append(items, asset)
		}
	}
	return items
}

// FilterByTag keeps assets carrying the given tag. The leading # sigil is
// cosmetic on both sides and comparison is case-insensitive, but otherwise
// equality is exact, not substring.
func FilterByTag(catalog []models.Asset, tag string) []models.Asset {
	tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))

	var items []models.Asset
	for _, asset := range catalog {
		for _, t := range asset.Tags {
			t = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "#"))
			if strings.EqualFold(t, tag) {
				items = append(items, asset)
				break
			}
		}
	}
	return items
}

// AggregateCounts returns the distinct category (or tag) values present in
// the catalog with the number of assets carrying each, sorted by descending
// count with ties broken by first-seen order. Tag values are counted with
// the # sigil stripped.
func AggregateCounts(catalog []models.Asset, groupBy GroupBy) []models.FacetCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int

	record := func(name string) {
		if name == "" {
			return
		}
		if _, ok := counts[name]; !ok {
			firstSeen[name] = order
			order++
		}
		counts[name]++
	}

	for _, asset := range catalog {
		switch groupBy {
		case ByCategory:
			record(strings.TrimSpace(asset.Category))
		case ByTag:
			seen := make(map[string]bool)
			for _, tag := range asset.Tags {
				tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
				if tag != "" && !seen[tag] {
					seen[tag] = true
					record(tag)
				}
			}
		}
	}

	facets := make([]models.FacetCount, 0, len(counts))
	for name, count := range counts {
		facets = append(facets, models.FacetCount{Name: name, Count: count})
	}
	sort.SliceStable(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return firstSeen[facets[i].Name] < firstSeen[facets[j].Name]
	})
	return facets
}
