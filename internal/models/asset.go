package models

import (
	"encoding/json"
	"strings"
)

// Asset is one catalog entry: a single generated image and its metadata.
// URL is derived from the ID at serve time, never stored in the data file.
type Asset struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        StringList `json:"tags,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// StringList decodes from either a JSON array of strings or a single
// comma-separated string. The historical assets.json contains both shapes.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// FacetCount is one row of a category or tag index, e.g. {"GX", 12}.
type FacetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SearchResult carries the filtered assets together with their count so a
// caller can display "N results" without a second pass.
type SearchResult struct {
	Items []Asset `json:"items"`
	Count int     `json:"count"`
}
