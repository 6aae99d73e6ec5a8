package resolver

import (
	"strings"

	"gxprime/internal/models"
)

// rule maps a provenance prefix of an asset id to the folder and file
// extension of the underlying media. Rules are checked in priority order;
// the last entry is the default provenance and matches every id.
type rule struct {
	prefix    string
	folder    string
	extension string
}

var rules = []rule{
	{prefix: "mid-", folder: "mid", extension: ".jpg"},
	{prefix: "niji-", folder: "niji", extension: ".jpg"},
	{prefix: "gpt-", folder: "GPT", extension: ".png"},
	{prefix: "nano-", folder: "nano", extension: ".jpg"},
	{prefix: "", folder: "grok", extension: ".jpg"},
}

// Resolve computes the media URL for an asset from its id alone. It is pure
// and total: every id maps to exactly one URL. Whether the file exists under
// that path is a deployment concern, not checked here.
func Resolve(asset models.Asset) string {
	for _, r := range rules {
		if strings.HasPrefix(asset.ID, r.prefix) {
			return "/assets/images/" + r.folder + "/" + asset.ID + r.extension
		}
	}
	// Unreachable: the empty-prefix rule always matches.
	return ""
}

// DisplaySrc returns the optimized WebP variant for local image paths.
// Non-local sources are returned unchanged.
func DisplaySrc(src string) string {
	if src == "" || !strings.Contains(src, "/images/") {
		return src
	}

	base := src
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}

	for _, ext := range []string{".png", ".jpg", ".jpeg"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)] + ".webp"
		}
	}
	return src
}
