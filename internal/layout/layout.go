// SPDX-License-Identifier: MPL-2.0

package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/openstenoproject/plover-launcher/pkg/cueutil"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

var (
	//go:embed layouts_schema.cue
	schemaCUE []byte

	//go:embed layouts.cue
	catalogCUE []byte

	// Selected names the profile baked into this build (set via -ldflags).
	// Empty means the catalog default.
	Selected = ""

	// ErrUnknownLayout is returned when a profile name is not in the catalog.
	ErrUnknownLayout = errors.New("unknown layout")

	// ErrInvalidLayout is the sentinel wrapped by InvalidLayoutError.
	ErrInvalidLayout = errors.New("invalid layout")

	loadEmbedded = sync.OnceValues(func() (*Catalog, error) {
		return Parse(catalogCUE, "layouts.cue")
	})
)

type (
	// Layout is one bundle layout profile.
	Layout struct {
		Name        string             `json:"name" toml:"name"`
		Description string             `json:"description" toml:"description"`
		Depth       int                `json:"depth" toml:"depth"`
		Interpreter types.RelativePath `json:"interpreter" toml:"interpreter"`
		EntryPoint  string             `json:"entry_point" toml:"entry_point"`
	}

	// Catalog is the set of known profiles plus the name of the default one.
	Catalog struct {
		DefaultName string   `json:"default"`
		Layouts     []Layout `json:"layouts"`
	}

	// InvalidLayoutError reports a profile that decoded but cannot be used.
	InvalidLayoutError struct {
		Name string
		Err  error
	}
)

// Error implements the error interface.
func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid layout %q: %v", e.Name, e.Err)
}

// Unwrap returns ErrInvalidLayout and the underlying cause.
func (e *InvalidLayoutError) Unwrap() []error { return []error{ErrInvalidLayout, e.Err} }

// Validate checks the constraints the launcher relies on.
func (l Layout) Validate() error {
	if l.Depth < 1 {
		return &InvalidLayoutError{Name: l.Name, Err: fmt.Errorf("depth %d must be at least 1", l.Depth)}
	}
	if err := l.Interpreter.Validate(); err != nil {
		return &InvalidLayoutError{Name: l.Name, Err: err}
	}
	if l.EntryPoint == "" {
		return &InvalidLayoutError{Name: l.Name, Err: errors.New("entry point must be non-empty")}
	}
	return nil
}

// InterpreterSuffix returns the interpreter location in host path syntax.
func (l Layout) InterpreterSuffix() string {
	return filepath.FromSlash(l.Interpreter.String())
}

// Parse decodes and validates a layout catalog document.
func Parse(data []byte, filename string) (*Catalog, error) {
	result, err := cueutil.ParseAndDecode[Catalog](schemaCUE, data, "#Catalog", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	c := result.Value

	seen := make(map[string]bool, len(c.Layouts))
	for _, l := range c.Layouts {
		if seen[l.Name] {
			return nil, fmt.Errorf("%s: duplicate layout %q", filename, l.Name)
		}
		seen[l.Name] = true
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	if !seen[c.DefaultName] {
		return nil, fmt.Errorf("%s: default %q: %w", filename, c.DefaultName, ErrUnknownLayout)
	}

	return c, nil
}

// Load returns the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return loadEmbedded()
}

// Lookup returns the profile with the given name.
func (c *Catalog) Lookup(name string) (Layout, error) {
	i := slices.IndexFunc(c.Layouts, func(l Layout) bool { return l.Name == name })
	if i < 0 {
		return Layout{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownLayout, name, c.Names())
	}
	return c.Layouts[i], nil
}

// Default returns the catalog's default profile.
func (c *Catalog) Default() Layout {
	l, err := c.Lookup(c.DefaultName)
	if err != nil {
		// Parse guarantees the default exists.
		panic(err)
	}
	return l
}

// Names lists profile names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Layouts))
	for _, l := range c.Layouts {
		names = append(names, l.Name)
	}
	return names
}

// Resolve returns the named profile, or the build's profile when name is empty.
func (c *Catalog) Resolve(name string) (Layout, error) {
	if name == "" {
		name = Selected
	}
	if name == "" {
		return c.Default(), nil
	}
	return c.Lookup(name)
}

// Current returns the profile this binary was built for.
func Current() (Layout, error) {
	c, err := Load()
	if err != nil {
		return Layout{}, err
	}
	return c.Resolve("")
}
