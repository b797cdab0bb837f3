// Package catalog loads batches of figure inputs, and optional themes, from
// JSON or YAML documents.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/render"
)

// Entry is a named figure input.
type Entry struct {
	ID     string
	Source string
	Figure model.FigureInput
}

// Catalog holds figures and themes in document order.
type Catalog struct {
	Entries []Entry
	Themes  []*theme.Manifest

	index map[string]int
}

// Lookup returns the entry with the given id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.Entries[idx], true
}

// Len reports the number of figure entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// Manifests returns the declared themes in document order.
func (c *Catalog) Manifests() []*theme.Manifest {
	if c == nil || len(c.Themes) == 0 {
		return nil
	}
	return append([]*theme.Manifest(nil), c.Themes...)
}

type documentFile struct {
	Figures []figureFile      `json:"figures" yaml:"figures"`
	Themes  []*theme.Manifest `json:"themes" yaml:"themes"`
}

type figureFile struct {
	ID        string `json:"id" yaml:"id"`
	Src       string `json:"src" yaml:"src"`
	Caption   string `json:"caption" yaml:"caption"`
	Class     string `json:"class" yaml:"class"`
	ClassName string `json:"className" yaml:"className"`
}

// Parse decodes a single JSON or YAML document. source names the document in
// error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	c := newCatalog()
	if err := c.add(data, source); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks fsys and merges every .json, .yaml and .yml document in lexical
// path order. Ids and theme names must be unique across files.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := newCatalog()
	if fsys == nil {
		return c, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		return c.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

func (c *Catalog) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for i, raw := range doc.Figures {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			return fmt.Errorf("catalog: file %s: figure %d has an empty id", source, i)
		}
		if _, exists := c.index[id]; exists {
			return fmt.Errorf("catalog: duplicate figure %q (file %s)", id, source)
		}
		class := raw.Class
		if class == "" {
			class = raw.ClassName
		}
		c.index[id] = len(c.Entries)
		c.Entries = append(c.Entries, Entry{
			ID:     id,
			Source: source,
			Figure: model.FigureInput{Src: raw.Src, Caption: raw.Caption, StyleClass: class},
		})
	}

	for i, manifest := range doc.Themes {
		if manifest == nil {
			return fmt.Errorf("catalog: file %s: theme %d is empty", source, i)
		}
		manifest.Name = strings.TrimSpace(manifest.Name)
		if manifest.Name == "" {
			return fmt.Errorf("catalog: file %s defines a theme without a name", source)
		}
		for _, existing := range c.Themes {
			if existing.Name == manifest.Name {
				return fmt.Errorf("catalog: duplicate theme %q (file %s)", manifest.Name, source)
			}
		}
		if err := render.ValidateManifest(manifest); err != nil {
			return fmt.Errorf("catalog: file %s: %w", source, err)
		}
		c.Themes = append(c.Themes, manifest)
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	err := yaml.Unmarshal(data, &doc)
	if err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: %w: %w", source, ErrInvalidDocument, err)
}

// ErrInvalidDocument reports input that is neither JSON nor YAML.
var ErrInvalidDocument = errors.New("invalid JSON or YAML")

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
