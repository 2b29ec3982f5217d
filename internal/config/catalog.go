package config

import (
	"fmt"
	"strings"
	"time"

	"csvcube/internal/common"
)

// CatalogMetadata is the descriptive metadata published with a dataset.
type CatalogMetadata struct {
	Title        string
	Summary      string
	Description  string
	Creator      string
	Publisher    string
	Issued       time.Time
	Themes       []string
	Keywords     []string
	LandingPages []string
	License      string
	ContactPoint string
}

// Clone returns a copy of m sharing no slices with it.
func (m CatalogMetadata) Clone() CatalogMetadata {
	m.Themes = common.CloneStrings(m.Themes)
	m.Keywords = common.CloneStrings(m.Keywords)
	m.LandingPages = common.CloneStrings(m.LandingPages)

	return m
}

// dateLayouts are the accepted layouts for publication dates, most specific
// first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// ParseDate parses a publication date. A value without a zone is read as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
