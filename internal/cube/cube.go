// Package cube holds a dataset's configuration together with its data,
// partitioned into named chunks.
package cube

import (
	"fmt"
	"strings"

	"csvcube/internal/config"
)

// Chunk is a named partition of a dataset's rows. Chunks are created by
// Cube.SetData and never modified afterwards.
type Chunk struct {
	name string
	data *Table
}

// Name returns the chunk name.
func (c *Chunk) Name() string {
	return c.name
}

// Data returns the chunk's table. Callers must not modify it.
func (c *Chunk) Data() *Table {
	return c.data
}

// Cube is one dataset: its configuration and its chunks. The configuration is
// shared read-only by every chunk.
type Cube struct {
	config *config.CubeConfig
	chunks []*Chunk
	byName map[string]*Chunk
}

// New returns an empty cube for cfg.
func New(cfg *config.CubeConfig) *Cube {
	return &Cube{
		config: cfg,
		byName: make(map[string]*Chunk),
	}
}

// Config returns the cube configuration. Callers must not modify it.
func (c *Cube) Config() *config.CubeConfig {
	return c.config
}

// SetData adds a copy of t as a new chunk. An empty chunkName means the
// dataset id. Adding a name twice fails with ErrDuplicateChunk; replacing data
// requires a new chunk name. t is checked as NewTable checks it, so a nil or
// hand-built table with bad columns fails with ErrInvalidTable.
func (c *Cube) SetData(t *Table, chunkName string) error {
	if t == nil {
		return fmt.Errorf("%w: no table", ErrInvalidTable)
	}

	data := t.Clone()

	_, err := NewTable(data.Columns, data.Rows)
	if err != nil {
		return err
	}

	if chunkName == "" {
		chunkName = c.config.DatasetID
	}

	err = validateChunkName(chunkName)
	if err != nil {
		return err
	}

	if _, ok := c.byName[chunkName]; ok {
		return fmt.Errorf("%w: chunk %q has already been added", ErrDuplicateChunk, chunkName)
	}

	chunk := &Chunk{name: chunkName, data: data}
	c.chunks = append(c.chunks, chunk)
	c.byName[chunkName] = chunk

	return nil
}

// Chunks returns the cube's chunks. The order carries no meaning beyond
// keeping output deterministic; it is the order chunks were added.
func (c *Cube) Chunks() []*Chunk {
	out := make([]*Chunk, len(c.chunks))
	copy(out, c.chunks)

	return out
}

// Chunk returns the chunk with the given name.
func (c *Cube) Chunk(name string) (*Chunk, bool) {
	chunk, ok := c.byName[name]

	return chunk, ok
}

// DeepClone returns a cube sharing no mutable state with c: the
// configuration and every chunk's data are copied.
func (c *Cube) DeepClone() *Cube {
	out := New(c.config.Clone())

	for _, chunk := range c.chunks {
		cp := &Chunk{name: chunk.name, data: chunk.data.Clone()}
		out.chunks = append(out.chunks, cp)
		out.byName[cp.name] = cp
	}

	return out
}

// validateChunkName rejects names that would escape the output directory.
func validateChunkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidChunkName, name)
	}

	return nil
}
