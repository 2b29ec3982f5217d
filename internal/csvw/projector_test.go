package csvw

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvcube/internal/columns"
	"csvcube/internal/config"
	"csvcube/internal/cube"
	"csvcube/internal/diagnostic"
	"csvcube/internal/vocab"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newProjector(strict bool) *Projector {
	return NewProjector(Config{
		Clock:       clockwork.NewFakeClockAt(fixedNow),
		StrictNames: strict,
	})
}

func tradeConfig() *config.CubeConfig {
	return &config.CubeConfig{
		BaseURI:   vocab.DefaultBaseURI,
		DatasetID: "hmrc-ots-cn8",
		Catalog: config.CatalogMetadata{
			Title:        "HMRC OTS CN8",
			Summary:      "Monthly trade in goods.",
			Description:  "Overseas trade statistics.",
			Issued:       time.Date(2020, 8, 13, 0, 0, 0, 0, time.UTC),
			Themes:       []string{"Trade"},
			Keywords:     []string{"trade", "goods"},
			LandingPages: []string{"https://www.uktradeinfo.com/"},
		},
		Columns: columns.NewMapping(
			columns.Entry{Title: "Period", Raw: map[string]any{
				"dimension": "http://purl.org/linked-data/sdmx/2009/dimension#refPeriod",
				"value":     "http://reference.data.gov.uk/id/{+period}",
			}},
			columns.Entry{Title: "Flow Type", Raw: map[string]any{
				"label":       "Flow Type",
				"description": "Direction of trade",
			}},
			columns.Entry{Title: "Measure Type", Raw: map[string]any{
				"dimension": vocab.QBMeasureType,
				"value":     "http://gss-data.org.uk/def/measure/{measure_type}",
				"types":     []any{"net-mass", "monetary-value"},
			}},
			columns.Entry{Title: "Value", Raw: map[string]any{"datatype": "decimal"}},
			columns.Entry{Title: "Marker", Raw: map[string]any{
				"attribute": "http://purl.org/linked-data/sdmx/2009/attribute#obsStatus",
				"value":     "http://gss-data.org.uk/def/concept/marker/{marker}",
			}},
			columns.Entry{Title: "Notes", Raw: false},
		),
	}
}

var tradeColumns = []string{"Period", "Flow Type", "Measure Type", "Value", "Marker", "Notes"}

func tradeCube(t *testing.T, cfg *config.CubeConfig, chunks ...string) *cube.Cube {
	t.Helper()

	c := cube.New(cfg)

	for _, name := range chunks {
		tbl, err := cube.NewTable(tradeColumns, [][]string{
			{"2020-01", "exports", "net-mass", "12.5", "", "n/a"},
		})
		require.NoError(t, err)
		require.NoError(t, c.SetData(tbl, name))
	}

	return c
}

func TestProjectColumnDescriptors(t *testing.T) {
	bundle, err := newProjector(false).Project(tradeCube(t, tradeConfig(), ""))
	require.NoError(t, err)
	require.Len(t, bundle.Chunks, 1)

	dataset := "http://gss-data.org.uk/data/hmrc-ots-cn8"
	want := []ColumnDescriptor{
		{
			Titles:      "Period",
			Name:        "period",
			Datatype:    &Datatype{Base: "string"},
			PropertyURL: "http://purl.org/linked-data/sdmx/2009/dimension#refPeriod",
			ValueURL:    "http://reference.data.gov.uk/id/{+period}",
		},
		{
			Titles:      "Flow Type",
			Name:        "flow_type",
			Datatype:    &Datatype{Base: "string"},
			PropertyURL: dataset + "#dimension/flow_type",
			ValueURL:    dataset + "#concept/flow_type/{flow_type}",
		},
		{
			Titles:      "Measure Type",
			Name:        "measure_type",
			Datatype:    &Datatype{Base: "string", Format: "^(net-mass|monetary-value)$"},
			PropertyURL: vocab.QBMeasureType,
			ValueURL:    "http://gss-data.org.uk/def/measure/{measure_type}",
		},
		{
			Titles:      "Value",
			Name:        "value",
			Datatype:    &Datatype{Base: "decimal"},
			PropertyURL: "http://gss-data.org.uk/def/measure/{measure_type}",
		},
		{
			Titles:      "Marker",
			Name:        "marker",
			Datatype:    &Datatype{Base: "string"},
			PropertyURL: "http://purl.org/linked-data/sdmx/2009/attribute#obsStatus",
			ValueURL:    "http://gss-data.org.uk/def/concept/marker/{marker}",
		},
		{
			Titles:         "Notes",
			Name:           "notes",
			Datatype:       &Datatype{Base: "string"},
			SuppressOutput: true,
		},
	}

	assert.Equal(t, want, bundle.Chunks[0].Schema.Columns)
	assert.Empty(t, bundle.Diagnostics.All())
}

func TestProjectDatasetDescriptor(t *testing.T) {
	bundle, err := newProjector(false).Project(tradeCube(t, tradeConfig(), "Q2-2020", "Q3-2020"))
	require.NoError(t, err)

	d := bundle.Dataset
	assert.Equal(t, vocab.CSVWContext, d.Context)
	assert.Equal(t, "http://gss-data.org.uk/data/hmrc-ots-cn8#dataset", d.ID)
	assert.Equal(t, "HMRC OTS CN8", d.Label)
	assert.Equal(t, "HMRC OTS CN8", d.Title)
	assert.Equal(t, "Monthly trade in goods.", d.Comment)
	assert.Equal(t, "Overseas trade statistics.", d.Description)
	assert.Equal(t, "2020-08-13", d.Issued)
	assert.Equal(t, "2024-01-02T03:04:05Z", d.Modified)
	assert.Equal(t, []string{"Trade"}, d.Themes)
	assert.Empty(t, d.Creator)
	assert.Equal(t, []TableRef{
		{URL: "Q2-2020/Q2-2020.csv", TableSchema: "Q2-2020/Q2-2020.table.json"},
		{URL: "Q3-2020/Q3-2020.csv", TableSchema: "Q3-2020/Q3-2020.table.json"},
	}, d.Tables)

	meta := bundle.Chunks[1].Metadata
	assert.Equal(t, ChunkMetadata{
		Context:     vocab.CSVWContext,
		URL:         "Q3-2020.csv",
		ID:          "http://gss-data.org.uk/data/hmrc-ots-cn8#chunk/Q3-2020",
		TableSchema: "Q3-2020.table.json",
		Label:       "Q3-2020",
		Title:       "Q3-2020",
	}, meta)
}

func TestProjectUnitAddsVirtualColumn(t *testing.T) {
	cfg := tradeConfig()
	cfg.Columns = columns.NewMapping(
		columns.Entry{Title: "Area"},
		columns.Entry{Title: "Value", Raw: map[string]any{
			"unit":    "http://gss-data.org.uk/def/concept/measurement-units/gbp-million",
			"measure": "http://gss-data.org.uk/def/measure/gdp",
		}},
	)

	c := cube.New(cfg)
	tbl, err := cube.NewTable([]string{"Area", "Value"}, [][]string{{"E1", "1"}})
	require.NoError(t, err)
	require.NoError(t, c.SetData(tbl, ""))

	bundle, err := newProjector(false).Project(c)
	require.NoError(t, err)

	cols := bundle.Chunks[0].Schema.Columns
	require.Len(t, cols, 3)
	assert.Equal(t, "http://gss-data.org.uk/def/measure/gdp", cols[1].PropertyURL)
	assert.Equal(t, ColumnDescriptor{
		Name:        "virt_unit",
		PropertyURL: vocab.SDMXUnitMeasure,
		ValueURL:    "http://gss-data.org.uk/def/concept/measurement-units/gbp-million",
		Virtual:     true,
	}, cols[2])
}

func TestProjectArityErrors(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
	}{
		{"no observed value", []string{"Period", "Measure Type"}},
		{"no measure type", []string{"Period", "Value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cube.New(tradeConfig())
			tbl, err := cube.NewTable(tt.titles, nil)
			require.NoError(t, err)
			require.NoError(t, c.SetData(tbl, "q1"))

			_, err = newProjector(false).Project(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, columns.ErrColumnArity)
			assert.Contains(t, err.Error(), `chunk "q1"`)
		})
	}
}

func TestProjectUnresolvableColumn(t *testing.T) {
	cfg := tradeConfig()
	cfg.Columns = columns.NewMapping(
		columns.Entry{Title: "Value", Raw: map[string]any{"datatype": "decimal", "measure": "http://m"}},
		columns.Entry{Title: "Odd", Raw: map[string]any{"value": "http://v"}},
	)

	c := cube.New(cfg)
	tbl, err := cube.NewTable([]string{"Odd", "Value"}, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetData(tbl, ""))

	_, err = newProjector(false).Project(c)
	assert.ErrorIs(t, err, columns.ErrUnresolvableColumn)
}

func TestProjectNumericMeasureTypes(t *testing.T) {
	doc, err := config.Parse([]byte(`{
  "id": "years",
  "title": "Years",
  "published": "2020-01-01",
  "columns": {
    "Measure Type": {
      "dimension": "http://purl.org/linked-data/cube#measureType",
      "value": "http://x/measure/{measure_type}",
      "types": [2019, 2020]
    },
    "Value": {"datatype": "decimal"}
  }
}`))
	require.NoError(t, err)

	cfg, err := config.Load(doc, "years")
	require.NoError(t, err)

	c := cube.New(cfg)
	tbl, err := cube.NewTable([]string{"Measure Type", "Value"}, [][]string{{"2019", "1"}})
	require.NoError(t, err)
	require.NoError(t, c.SetData(tbl, ""))

	bundle, err := newProjector(false).Project(c)
	require.NoError(t, err)

	mt := bundle.Chunks[0].Schema.Columns[0]
	assert.Equal(t, "measure_type", mt.Name)
	assert.Equal(t, "^(2019|2020)$", mt.Datatype.Format)
}

func TestProjectNameCollision(t *testing.T) {
	cfg := tradeConfig()
	cfg.Columns = columns.NewMapping(
		columns.Entry{Title: "Value", Raw: map[string]any{"datatype": "decimal", "measure": "http://m"}},
	)

	newCube := func() *cube.Cube {
		c := cube.New(cfg)
		tbl, err := cube.NewTable([]string{"Flow Type", "Flow-Type", "Value"}, nil)
		require.NoError(t, err)
		require.NoError(t, c.SetData(tbl, ""))

		return c
	}

	bundle, err := newProjector(false).Project(newCube())
	require.NoError(t, err)
	require.Len(t, bundle.Diagnostics.Warnings, 1)

	w := bundle.Diagnostics.Warnings[0]
	assert.Equal(t, CodeNameCollision, w.Code)
	assert.Equal(t, "Flow-Type", w.Column)

	_, err = newProjector(true).Project(newCube())
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestProjectStrictReportsEveryCollision(t *testing.T) {
	cfg := tradeConfig()
	cfg.Columns = columns.NewMapping(
		columns.Entry{Title: "Value", Raw: map[string]any{"datatype": "decimal", "measure": "http://m"}},
	)

	c := cube.New(cfg)

	first, err := cube.NewTable([]string{"Flow Type", "Flow-Type", "Value"}, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetData(first, "a"))

	second, err := cube.NewTable([]string{"Area", "AREA", "Value"}, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetData(second, "b"))

	bundle, err := newProjector(true).Project(c)
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, ErrNameCollision)
	assert.Contains(t, err.Error(), `[a] "Flow-Type": [name_collision]`)
	assert.Contains(t, err.Error(), `[b] "AREA": [name_collision]`)
}

func TestProjectDiagnostics(t *testing.T) {
	cfg := tradeConfig()
	cfg.Columns = columns.NewMapping(
		columns.Entry{Title: "Flow type", Raw: map[string]any{"label": "Flow"}},
		columns.Entry{Title: "Area", Raw: map[string]any{"label": "Area", "descripton": "Region"}},
		columns.Entry{Title: "Value", Raw: map[string]any{"datatype": "decimal", "measure": "http://m"}},
	)

	c := cube.New(cfg)
	for _, name := range []string{"a", "b"} {
		tbl, err := cube.NewTable([]string{"Area", "Flow Type", "Value"}, nil)
		require.NoError(t, err)
		require.NoError(t, c.SetData(tbl, name))
	}

	bundle, err := newProjector(false).Project(c)
	require.NoError(t, err)

	byCode := map[string][]diagnostic.Diagnostic{}
	for _, d := range bundle.Diagnostics.All() {
		byCode[d.Code] = append(byCode[d.Code], d)
	}

	require.Len(t, byCode[CodeUnknownKey], 1)
	assert.Equal(t, "Area", byCode[CodeUnknownKey][0].Column)
	assert.Equal(t, []string{"description"}, byCode[CodeUnknownKey][0].Suggestions)

	require.Len(t, byCode[CodeUnusedColumn], 1)
	assert.Equal(t, "Flow type", byCode[CodeUnusedColumn][0].Column)
	assert.Equal(t, []string{"Flow Type"}, byCode[CodeUnusedColumn][0].Suggestions)

	require.Len(t, byCode[CodeUnmappedColumn], 1)
	assert.Equal(t, diagnostic.SeverityInfo, byCode[CodeUnmappedColumn][0].Severity)
	assert.Equal(t, []string{"Flow type"}, byCode[CodeUnmappedColumn][0].Suggestions)

	assert.False(t, bundle.Diagnostics.HasErrors())
}

func TestProjectDoesNotModifyCube(t *testing.T) {
	c := tradeCube(t, tradeConfig(), "a")
	before := c.DeepClone()

	_, err := newProjector(false).Project(c)
	require.NoError(t, err)

	assert.Equal(t, before, c)
}

func TestDatasetURI(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://gss-data.org.uk/", "http://gss-data.org.uk/data/cube"},
		{"http://gss-data.org.uk", "http://gss-data.org.uk/data/cube"},
		{"http://example.org/prefix/", "http://example.org/prefix/data/cube"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, err := DatasetURI(tt.base, "cube")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeasureTypeFormat(t *testing.T) {
	assert.Equal(t, "^(net-mass|monetary-value)$", measureTypeFormat([]string{"net-mass", "monetary-value"}))
	assert.Equal(t, `^(a\.b|c\|d)$`, measureTypeFormat([]string{"a.b", "c|d"}))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "2021-05-25", formatDate(time.Date(2021, 5, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-08-13T09:30:00Z", formatDate(time.Date(2020, 8, 13, 9, 30, 0, 0, time.UTC)))
}
