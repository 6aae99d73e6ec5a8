package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gxprime/internal/models"
)

func sampleCatalog() []models.Asset {
	return []models.Asset{
		{ID: "g1", Title: "Wind Farm", Category: "GX", Tags: models.StringList{"#脱炭素"}},
		{ID: "g2", Title: "Ocean Base", Category: "水中", Tags: models.StringList{"#未来都市"}},
	}
}

func ids(assets []models.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	catalog := sampleCatalog()

	for _, q := range []string{"", "   ", "#", " # "} {
		result := Filter(catalog, q)
		assert.Equal(t, ids(catalog), ids(result.Items), "q=%q", q)
		assert.Equal(t, len(catalog), result.Count, "q=%q", q)
	}
}

func TestFilterMatchesAcrossFields(t *testing.T) {
	catalog := []models.Asset{
		{ID: "a1", Title: "Solar Array", Category: "宇宙"},
		{ID: "a2", Title: "City", Description: "a solar-punk skyline", Category: "未来都市"},
		{ID: "a3", Title: "Reactor", Category: "エネルギー", Tags: models.StringList{"#solar"}},
		{ID: "a4", Title: "Forest", Category: "エコ・ライフスタイル"},
	}

	result := Filter(catalog, "SOLAR")
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(result.Items))
	assert.Equal(t, 3, result.Count)

	// Sigil on the query is cosmetic.
	assert.Equal(t, result, Filter(catalog, "#solar"))
}

func TestFilterScenario(t *testing.T) {
	catalog := sampleCatalog()

	result := Filter(catalog, "脱炭素")
	assert.Equal(t, []string{"g1"}, ids(result.Items))
	assert.Equal(t, 1, result.Count)
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := sampleCatalog()

	once := Filter(catalog, "wind")
	twice := Filter(once.Items, "wind")
	assert.Equal(t, once, twice)
}

func TestFilterSoundAndComplete(t *testing.T) {
	catalog := sampleCatalog()
	q := "o"

	result := Filter(catalog, q)
	matched := make(map[string]bool)
	for _, a := range result.Items {
		assert.True(t, matches(a, q), "result contains non-matching asset %s", a.ID)
		matched[a.ID] = true
	}
	for _, a := range catalog {
		if !matched[a.ID] {
			assert.False(t, matches(a, q), "matching asset %s missing from result", a.ID)
		}
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	result := Filter(nil, "anything")
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Count)
}

func TestFilterByCategory(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, []string{"g2"}, ids(FilterByCategory(catalog, "水中")))
	// Exact equality, not substring.
	assert.Empty(t, FilterByCategory(catalog, "水"))
	assert.Empty(t, FilterByCategory(catalog, "深海"))
}

func TestFilterByTag(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, []string{"g1"}, ids(FilterByTag(catalog, "脱炭素")))
	assert.Equal(t, []string{"g1"}, ids(FilterByTag(catalog, "#脱炭素")))
	// Exact equality after sigil stripping.
	assert.Empty(t, FilterByTag(catalog, "脱炭"))
}

func TestAggregateCountsByCategory(t *testing.T) {
	catalog := sampleCatalog()

	counts := AggregateCounts(catalog, ByCategory)
	assert.Equal(t, []models.FacetCount{
		{Name: "GX", Count: 1},
		{Name: "水中", Count: 1},
	}, counts)
}

func TestAggregateCountsByTagSortedDescending(t *testing.T) {
	catalog := []models.Asset{
		{ID: "a", Tags: models.StringList{"#city", "#eco"}},
		{ID: "b", Tags: models.StringList{"#eco"}},
		{ID: "c", Tags: models.StringList{"eco", "#sea"}},
		// Duplicate tag on one asset counts once.
		{ID: "d", Tags: models.StringList{"#city", "city"}},
	}

	counts := AggregateCounts(catalog, ByTag)
	assert.Equal(t, []models.FacetCount{
		{Name: "eco", Count: 3},
		{Name: "city", Count: 2},
		{Name: "sea", Count: 1},
	}, counts)
}
