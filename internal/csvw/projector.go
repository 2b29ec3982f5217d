package csvw

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"csvcube/internal/columns"
	"csvcube/internal/config"
	"csvcube/internal/cube"
	"csvcube/internal/diagnostic"
	"csvcube/internal/match"
	"csvcube/internal/vocab"
)

// unitColumnName names the virtual column carrying an observation's unit.
const unitColumnName = "virt_unit"

// Projector turns cubes into CSVW bundles.
type Projector struct {
	log    *slog.Logger
	clock  clockwork.Clock
	strict bool
}

// NewProjector returns a projector for cfg.
func NewProjector(cfg Config) *Projector {
	cfg.applyDefaults()

	return &Projector{
		log:    cfg.Logger,
		clock:  cfg.Clock,
		strict: cfg.StrictNames,
	}
}

// projection carries the per-run state of Project.
type projection struct {
	cfg        *config.CubeConfig
	datasetURI string
	diags      diagnostic.Diagnostics
	// titles seen in any chunk, and titles whose raw keys were checked.
	seen    map[string]struct{}
	checked map[string]struct{}
}

// Project resolves every chunk of c and describes it as CSVW. c is not
// modified. Resolution failures abort the projection. In strict mode every
// chunk is still projected so all name collisions are reported together.
func (p *Projector) Project(c *cube.Cube) (*Bundle, error) {
	cfg := c.Config()

	datasetURI, err := DatasetURI(cfg.BaseURI, cfg.DatasetID)
	if err != nil {
		return nil, err
	}

	run := &projection{
		cfg:        cfg,
		datasetURI: datasetURI,
		seen:       make(map[string]struct{}),
		checked:    make(map[string]struct{}),
	}

	bundle := &Bundle{DatasetID: cfg.DatasetID}

	for _, chunk := range c.Chunks() {
		out, err := p.projectChunk(run, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %q: %w", chunk.Name(), err)
		}

		bundle.Chunks = append(bundle.Chunks, out)
	}

	if run.diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrNameCollision, run.diags.Error())
	}

	run.reportUnused()

	bundle.Dataset = p.describeDataset(run, bundle.Chunks)
	bundle.Diagnostics = run.diags

	p.log.Debug("projected cube",
		"dataset", cfg.DatasetID,
		"chunks", len(bundle.Chunks),
		"warnings", len(bundle.Diagnostics.Warnings))

	return bundle, nil
}

func (p *Projector) projectChunk(run *projection, chunk *cube.Chunk) (ChunkOutput, error) {
	data := chunk.Data()

	resolved, err := columns.ResolveTable(data.Columns, run.cfg.Columns)
	if err != nil {
		return ChunkOutput{}, err
	}

	run.inspectTitles(chunk.Name(), data.Columns)

	names := make(map[string]string, len(resolved.Columns)+1)
	schema := TableSchema{Columns: make([]ColumnDescriptor, 0, len(resolved.Columns)+1)}

	for _, col := range resolved.Columns {
		name := match.ColumnName(col.Title)

		p.claimName(run, chunk.Name(), names, name, col.Title)

		schema.Columns = append(schema.Columns, run.describeColumn(col, name))
	}

	if ov, ok := resolved.ObservedValue(); ok && ov.ObservedValue.UnitURI != "" {
		p.claimName(run, chunk.Name(), names, unitColumnName, "")

		schema.Columns = append(schema.Columns, ColumnDescriptor{
			Name:        unitColumnName,
			PropertyURL: vocab.SDMXUnitMeasure,
			ValueURL:    ov.ObservedValue.UnitURI,
			Virtual:     true,
		})
	}

	p.log.Debug("projected chunk", "chunk", chunk.Name(), "columns", len(schema.Columns), "rows", data.Len())

	return ChunkOutput{
		Name:   chunk.Name(),
		Data:   data,
		Schema: schema,
		Metadata: ChunkMetadata{
			Context:     vocab.CSVWContext,
			URL:         chunk.Name() + ".csv",
			ID:          chunkURI(run.datasetURI, chunk.Name()),
			TableSchema: chunk.Name() + ".table.json",
			Label:       chunk.Name(),
			Title:       chunk.Name(),
		},
	}, nil
}

// claimName records that title uses name within one chunk. A second title
// claiming the same name is a collision: an error in strict mode, otherwise
// a warning.
func (p *Projector) claimName(run *projection, chunk string, names map[string]string, name, title string) {
	first, taken := names[name]
	if !taken {
		names[name] = title
		return
	}

	msg := fmt.Sprintf("column name %q is shared with column %q", name, first)
	if p.strict {
		run.diags.AddError(CodeNameCollision, msg, chunk, title)
		return
	}

	run.diags.AddWarning(CodeNameCollision, msg, chunk, title)
}

// describeColumn returns the CSVW descriptor of one resolved column.
func (r *projection) describeColumn(col columns.Column, name string) ColumnDescriptor {
	d := ColumnDescriptor{
		Titles:   col.Title,
		Name:     name,
		Datatype: &Datatype{Base: vocab.DatatypeString},
	}

	switch {
	case col.Role.IsDimension():
		dim := col.Dimension

		if dim.IsExisting() {
			d.PropertyURL = dim.DimensionURI
			d.ValueURL = dim.ValueURI
		} else {
			d.PropertyURL = dimensionURI(r.datasetURI, name)
			d.ValueURL = conceptTemplate(r.datasetURI, name)
		}

		if dim.MeasureType != nil && len(dim.MeasureType.Types) > 0 {
			d.Datatype.Format = measureTypeFormat(dim.MeasureType.Types)
		}

	case col.Role == columns.RoleAttribute:
		d.PropertyURL = col.Attribute.AttributeURI
		d.ValueURL = col.Attribute.ValueURI

	case col.Role == columns.RoleObservedValue:
		d.PropertyURL = col.ObservedValue.MeasureURI
		if col.ObservedValue.Datatype != "" {
			d.Datatype.Base = col.ObservedValue.Datatype
		}

	case col.Role == columns.RoleSuppressed:
		d.SuppressOutput = true
	}

	return d
}

// inspectTitles reports unknown configuration keys and chunk columns with no
// configuration. Each title is inspected once per run.
func (r *projection) inspectTitles(chunk string, titles []string) {
	mapped := r.cfg.Columns.Titles()

	for _, title := range titles {
		r.seen[title] = struct{}{}

		if _, done := r.checked[title]; done {
			continue
		}

		r.checked[title] = struct{}{}

		raw, ok := r.cfg.Columns.Lookup(title)
		if !ok {
			r.diags.AddInfo(CodeUnmappedColumn,
				"column has no configuration and is treated as a new dimension",
				chunk, title,
				match.Suggest(title, mapped, 2)...)

			continue
		}

		for _, key := range columns.UnknownKeys(raw) {
			r.diags.AddWarning(CodeUnknownKey,
				fmt.Sprintf("unknown configuration key %q", key),
				chunk, title,
				match.Suggest(key, columns.RecognizedKeys, 1)...)
		}
	}
}

// reportUnused warns about configured titles that appear in no chunk.
func (r *projection) reportUnused() {
	seen := make([]string, 0, len(r.seen))
	for title := range r.seen {
		seen = append(seen, title)
	}

	slices.Sort(seen)

	for _, title := range r.cfg.Columns.Titles() {
		if _, ok := r.seen[title]; ok {
			continue
		}

		r.diags.AddWarning(CodeUnusedColumn,
			"configured column does not appear in any chunk",
			"", title,
			match.Suggest(title, seen, 2)...)
	}
}

func (p *Projector) describeDataset(run *projection, chunks []ChunkOutput) DatasetDescriptor {
	meta := run.cfg.Catalog.Clone()

	tables := make([]TableRef, 0, len(chunks))
	for i := range chunks {
		tables = append(tables, TableRef{
			URL:         chunks[i].CSVPath(),
			TableSchema: chunks[i].SchemaPath(),
		})
	}

	return DatasetDescriptor{
		Context:      vocab.CSVWContext,
		ID:           run.datasetURI + "#dataset",
		Tables:       tables,
		Label:        meta.Title,
		Title:        meta.Title,
		Comment:      meta.Summary,
		Description:  meta.Description,
		Creator:      meta.Creator,
		Publisher:    meta.Publisher,
		Issued:       formatDate(meta.Issued),
		Modified:     p.clock.Now().UTC().Format(time.RFC3339),
		License:      meta.License,
		Themes:       meta.Themes,
		Keywords:     meta.Keywords,
		LandingPages: meta.LandingPages,
		ContactPoint: meta.ContactPoint,
	}
}
