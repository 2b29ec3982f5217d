package csvw

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// DatasetURI returns <baseURI>/data/<datasetID> without doubled slashes.
func DatasetURI(baseURI, datasetID string) (string, error) {
	u, err := url.JoinPath(baseURI, "data", datasetID)
	if err != nil {
		return "", fmt.Errorf("building dataset URI from base %q: %w", baseURI, err)
	}

	return u, nil
}

func dimensionURI(datasetURI, name string) string {
	return datasetURI + "#dimension/" + name
}

func conceptTemplate(datasetURI, name string) string {
	return datasetURI + "#concept/" + name + "/{" + name + "}"
}

func chunkURI(datasetURI, chunk string) string {
	return datasetURI + "#chunk/" + chunk
}

// measureTypeFormat returns a regular expression matching exactly the given
// measure codes.
func measureTypeFormat(types []string) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}

	return "^(" + strings.Join(quoted, "|") + ")$"
}

// formatDate renders a date-only value as YYYY-MM-DD and anything else as
// RFC 3339.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	if t.Equal(t.Truncate(24*time.Hour)) && t.Location() == time.UTC {
		return t.Format(time.DateOnly)
	}

	return t.Format(time.RFC3339)
}
