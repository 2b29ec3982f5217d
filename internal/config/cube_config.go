package config

import (
	"fmt"

	"csvcube/internal/columns"
	"csvcube/internal/vocab"
)

// CubeConfig is the resolved configuration of one dataset. It is built once
// by Load and treated as read-only; use Clone to derive a modified copy.
type CubeConfig struct {
	BaseURI   string
	DatasetID string
	Catalog   CatalogMetadata
	Columns   columns.Mapping
}

// documentFields mirrors the keys of a resolved configuration document.
type documentFields struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Summary     string          `yaml:"summary"`
	Description string          `yaml:"description"`
	Creator     string          `yaml:"creator"`
	Publisher   string          `yaml:"publisher"`
	Published   string          `yaml:"published"`
	Families    StringOrArray   `yaml:"families"`
	Keywords    StringOrArray   `yaml:"keywords"`
	LandingPage StringOrArray   `yaml:"landingPage"`
	License     string          `yaml:"license"`
	ContactURI  string          `yaml:"contactUri"`
	BaseURI     string          `yaml:"baseUri"`
	Columns     columns.Mapping `yaml:"columns"`
}

// LoadFromFile loads the document at path and resolves the configuration of
// cubeID from it.
func LoadFromFile(path, cubeID string) (*CubeConfig, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(doc, cubeID)
}

// Load resolves the configuration of cubeID from doc, applying any override
// block, and validates the required keys.
func Load(doc *Document, cubeID string) (*CubeConfig, error) {
	resolved, ok := OverrideForCube(doc, cubeID)
	if !ok {
		return nil, fmt.Errorf("%w for cube with id %q", ErrConfigNotFound, cubeID)
	}

	var f documentFields

	err := resolved.Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration for %q: %w", cubeID, err)
	}

	for _, req := range []struct{ key, value string }{
		{keyID, f.ID},
		{keyTitle, f.Title},
		{keyPublished, f.Published},
	} {
		if req.value == "" {
			return nil, &MissingFieldError{Key: req.key}
		}
	}

	issued, err := ParseDate(f.Published)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", keyPublished, err)
	}

	baseURI := f.BaseURI
	if baseURI == "" {
		baseURI = vocab.DefaultBaseURI
	}

	return &CubeConfig{
		BaseURI:   baseURI,
		DatasetID: f.ID,
		Catalog: CatalogMetadata{
			Title:        f.Title,
			Summary:      f.Summary,
			Description:  f.Description,
			Creator:      f.Creator,
			Publisher:    f.Publisher,
			Issued:       issued,
			Themes:       f.Families,
			Keywords:     f.Keywords,
			LandingPages: f.LandingPage,
			License:      f.License,
			ContactPoint: f.ContactURI,
		},
		Columns: f.Columns,
	}, nil
}

// Clone returns a deep copy of c.
func (c *CubeConfig) Clone() *CubeConfig {
	return &CubeConfig{
		BaseURI:   c.BaseURI,
		DatasetID: c.DatasetID,
		Catalog:   c.Catalog.Clone(),
		Columns:   c.Columns.Clone(),
	}
}
