package describe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gxprime/internal/models"
)

func TestGenerateReturnsAuthoredDescription(t *testing.T) {
	authored := strings.Repeat("あ", 40)
	asset := models.Asset{ID: "mid-007", Title: "洋上風力", Description: authored}

	assert.Equal(t, authored, Generate(asset))
}

func TestGenerateIgnoresShortDescription(t *testing.T) {
	asset := models.Asset{
		ID:          "mid-007",
		Title:       "洋上風力ファーム",
		Description: strings.Repeat("あ", 39),
		Category:    "GX",
	}

	got := Generate(asset)
	assert.NotEqual(t, asset.Description, got)
	assert.Greater(t, len([]rune(got)), 39)
}

func TestGenerateIsDeterministic(t *testing.T) {
	asset := models.Asset{
		ID:       "mid-012",
		Title:    "垂直庭園のメガシティ",
		Category: "未来都市",
		Tags:     models.StringList{"#未来都市", "#スマートシティ"},
	}

	first := Generate(asset)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Generate(asset))
	}
	assert.NotEmpty(t, first)
}

func TestGenerateThemePriority(t *testing.T) {
	cases := []struct {
		name  string
		asset models.Asset
		want  string
	}{
		{
			name:  "mobility wins over city",
			asset: models.Asset{ID: "a", Title: "t", Tags: models.StringList{"#未来都市", "#モビリティ"}},
			want:  "次世代モビリティ",
		},
		{
			name:  "keyword found in category",
			asset: models.Asset{ID: "b", Title: "t", Category: "エネルギー"},
			want:  "クリーンエネルギー",
		},
		{
			name:  "keyword found in title",
			asset: models.Asset{ID: "c", Title: "宇宙基地"},
			want:  "宇宙・先端技術",
		},
		{
			name:  "underwater",
			asset: models.Asset{ID: "d", Title: "t", Category: "水中"},
			want:  "水中・環境技術",
		},
		{
			name:  "default theme",
			asset: models.Asset{ID: "e", Title: "t", Category: "その他"},
			want:  "GXコンセプト",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Generate(tc.asset), "「"+tc.want+"」")
		})
	}
}

func TestGenerateSeedFallback(t *testing.T) {
	// With no id the seed falls back to title, then category; output stays
	// deterministic and non-empty in every case.
	byTitle := models.Asset{Title: "海中リサーチベース"}
	byCategory := models.Asset{Category: "GX"}
	empty := models.Asset{}

	for _, asset := range []models.Asset{byTitle, byCategory, empty} {
		got := Generate(asset)
		assert.NotEmpty(t, got)
		assert.Equal(t, got, Generate(asset))
	}
}

func TestHashString(t *testing.T) {
	// h = h*31 + code, wrapped to 32 bits.
	assert.Equal(t, uint32(0), hashString(""))
	assert.Equal(t, uint32('a'), hashString("a"))
	assert.Equal(t, uint32('a')*31+uint32('b'), hashString("ab"))

	// Differs from its reverse, wraps without panicking on long input.
	assert.NotEqual(t, hashString("ab"), hashString("ba"))
	_ = hashString(strings.Repeat("長い入力", 1000))
}

func TestTitleTokens(t *testing.T) {
	tokens := titleTokens("洋上風力ファーム：夜明けの海")
	assert.Equal(t, []string{"洋上風力ファーム", "夜明けの海"}, tokens)

	// Single-rune and over-long tokens are dropped.
	assert.Empty(t, titleTokens("あ"))
	assert.Empty(t, titleTokens(strings.Repeat("あ", 11)))
}
