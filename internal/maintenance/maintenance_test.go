package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	writeFile(t, path, `[
  {"id": "g1", "title": "Wind Farm", "category": "GX", "tags": ["#脱炭素"]}
]
`)
	assert.NoError(t, ValidateFile(path))
}

func TestValidateFileReportsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	writeFile(t, path, "[\n  {\"id\": \"g1\"},\n  {\"id\": \"g2\",}\n]\n")

	err := ValidateFile(path)
	assert.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, 3, ve.Line)
	assert.Contains(t, ve.Context, "[[ERROR HERE]]")
	assert.Contains(t, ve.Error(), "line 3")
}

func TestValidateFileMissing(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestFixCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	writeFile(t, path, `[
  {"id": "g1", "title": "a", "category": "Mobility", "extra": "kept"},
  {"id": "g2", "title": "b", "category": "モビリティ"},
  {"id": "g3", "title": "c", "category": "Energy"}
]
`)

	changed, err := FixCategories(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, changed)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	var entries []map[string]any
	assert.NoError(t, json.Unmarshal(raw, &entries))
	assert.Equal(t, "モビリティ", entries[0]["category"])
	assert.Equal(t, "kept", entries[0]["extra"])
	assert.Equal(t, "モビリティ", entries[1]["category"])
	assert.Equal(t, "エネルギー", entries[2]["category"])
}

func TestFixCategoriesNoChangesLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	content := `[{"id":"g1","title":"a","category":"モビリティ"}]`
	writeFile(t, path, content)

	changed, err := FixCategories(path)
	assert.NoError(t, err)
	assert.Zero(t, changed)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, content, string(raw))
}

func TestFillDescriptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	writeFile(t, path, `[
  {"id": "g1", "title": "Wind Farm", "category": "GX", "tags": ["#脱炭素"], "description": "short"},
  {"id": "g2", "title": "Ocean Base", "category": "水中", "description": "この説明文はすでに十分な長さがあり、サービングしきい値の四十文字をゆうに超えているため書き換えない。"}
]
`)

	var described []string
	fn := func(ctx context.Context, title, category string, tags []string) (string, error) {
		described = append(described, title)
		assert.Equal(t, "GX", category)
		assert.Equal(t, []string{"#脱炭素"}, tags)
		return "generated text", nil
	}

	changed, err := FillDescriptions(context.Background(), path, fn)
	assert.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, []string{"Wind Farm"}, described)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	var entries []map[string]any
	assert.NoError(t, json.Unmarshal(raw, &entries))
	assert.Equal(t, "generated text", entries[0]["description"])
	assert.Contains(t, entries[1]["description"], "書き換えない")
}

func TestFillDescriptionsAbortsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	content := `[{"id":"g1","title":"a","category":"GX","description":""}]`
	writeFile(t, path, content)

	fn := func(ctx context.Context, title, category string, tags []string) (string, error) {
		return "", errors.New("model unavailable")
	}

	_, err := FillDescriptions(context.Background(), path, fn)
	assert.Error(t, err)

	// Nothing was written.
	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, content, string(raw))
}

func TestFindDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "grok", "a.jpg"), "same bytes")
	writeFile(t, filepath.Join(dir, "mid", "b.jpg"), "same bytes")
	writeFile(t, filepath.Join(dir, "mid", "c.png"), "different bytes")
	writeFile(t, filepath.Join(dir, "notes.txt"), "same bytes")

	groups, err := FindDuplicates(dir)
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, []string{
		filepath.Join(dir, "grok", "a.jpg"),
		filepath.Join(dir, "mid", "b.jpg"),
	}, groups[0].Paths)
}

func TestFindDuplicatesNone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.webp"), "one")
	writeFile(t, filepath.Join(dir, "b.webp"), "two")

	groups, err := FindDuplicates(dir)
	assert.NoError(t, err)
	assert.Empty(t, groups)
}
