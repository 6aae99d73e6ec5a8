// Package maintenance holds the logic behind the tools CLI: one-off,
// out-of-band operations on the asset snapshot and image tree. Nothing here
// runs at request time.
package maintenance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gxprime/internal/catalog"
	"gxprime/internal/models"
)

// ValidationError describes a JSON parse failure with enough surrounding
// context to locate it in a large hand-edited file.
type ValidationError struct {
	Offset  int64
	Line    int
	Context string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid JSON at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateFile checks that path parses as a JSON asset array.
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []models.Asset
	err = json.Unmarshal(raw, &entries)
	if err == nil {
		return nil
	}

	ve := &ValidationError{Err: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		ve.Offset = syntaxErr.Offset
		ve.Line = 1 + strings.Count(string(raw[:min64(syntaxErr.Offset, int64(len(raw)))]), "\n")
		ve.Context = contextAround(raw, syntaxErr.Offset)
	}
	return ve
}

// FixCategories rewrites legacy category labels in place and reports how
// many entries changed. The file keeps its two-space indentation so diffs
// against the historical snapshot stay readable.
func FixCategories(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, err
	}

	changed := 0
	for _, entry := range entries {
		current, _ := entry["category"].(string)
		if mapped, ok := catalog.LegacyCategories[strings.TrimSpace(current)]; ok {
			entry["category"] = mapped
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return 0, err
	}
	return changed, nil
}

// DescribeFunc authors a description for an asset. Injected so the rewrite
// logic can be exercised without a live LLM.
type DescribeFunc func(ctx context.Context, title, category string, tags []string) (string, error)

// minAuthoredLen mirrors the serving-path threshold: entries at or above it
// already render their authored text and are left alone.
const minAuthoredLen = 40

// FillDescriptions authors descriptions for entries whose description is
// shorter than the serving threshold, rewriting the file in place. Unknown
// fields in each entry are preserved. Returns the number of entries updated;
// a failed entry aborts before anything is written.
func FillDescriptions(ctx context.Context, path string, fn DescribeFunc) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, err
	}

	changed := 0
	for _, entry := range entries {
		current, _ := entry["description"].(string)
		if len([]rune(strings.TrimSpace(current))) >= minAuthoredLen {
			continue
		}

		title, _ := entry["title"].(string)
		category, _ := entry["category"].(string)

		description, err := fn(ctx, title, category, entryTags(entry))
		if err != nil {
			return 0, fmt.Errorf("describing %q: %w", title, err)
		}
		if description == "" {
			continue
		}

		entry["description"] = description
		changed++
	}

	if changed == 0 {
		return 0, nil
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return 0, err
	}
	return changed, nil
}

func entryTags(entry map[string]any) []string {
	var tags []string
	switch v := entry["tags"].(type) {
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				tags = append(tags, s)
			}
		}
	}
	return tags
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// DuplicateGroup is a set of files sharing one content hash.
type DuplicateGroup struct {
	Hash  string
	Paths []string
}

// FindDuplicates hashes every image under dir with SHA-256 and returns the
// groups containing more than one file, sorted by hash for stable output.
func FindDuplicates(dir string) ([]DuplicateGroup, error) {
	byHash := make(map[string][]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		sum, err := hashFile(path)
		if err != nil {
			return err
		}
		byHash[sum] = append(byHash[sum], path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var groups []DuplicateGroup
	for sum, paths := range byHash {
		if len(paths) > 1 {
			sort.Strings(paths)
			groups = append(groups, DuplicateGroup{Hash: sum, Paths: paths})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Hash < groups[j].Hash })
	return groups, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func contextAround(raw []byte, offset int64) string {
	start := offset - 100
	if start < 0 {
		start = 0
	}
	end := offset + 100
	if end > int64(len(raw)) {
		end = int64(len(raw))
	}
	if offset > int64(len(raw)) {
		offset = int64(len(raw))
	}
	return string(raw[start:offset]) + " [[ERROR HERE]] " + string(raw[offset:end])
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
