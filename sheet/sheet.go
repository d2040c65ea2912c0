// Package sheet loads named styles from TOML, YAML or JSON files.
//
// A sheet is a table of styles keyed by name. Each entry uses the loose
// field shapes accepted by style.Loose and is resolved into a style.Flat
// builder when the sheet is loaded, so malformed entries fail early.
// Style names are case-sensitive and kept exactly as written, dots included.
package sheet

import (
	"fmt"
	"sort"

	"github.com/decor-cli/decor/filesystem"
	"github.com/decor-cli/decor/log"
	"github.com/decor-cli/decor/modifier"
	"github.com/decor-cli/decor/style"
	"github.com/go-playground/validator/v10"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Entry is one style as written in a sheet file.
type Entry struct {
	Padding    any `mapstructure:"padding" json:"padding,omitempty" jsonschema:"oneof_type=integer;array;object"`
	Background any `mapstructure:"background" json:"background,omitempty" jsonschema:"oneof_type=string;array;object"`
	Border     any `mapstructure:"border" json:"border,omitempty" jsonschema:"oneof_type=array;object"`

	Width  *int `mapstructure:"width" json:"width,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0"`
	Height *int `mapstructure:"height" json:"height,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0"`

	FillMaxWidth  *float64 `mapstructure:"fill_max_width" json:"fill_max_width,omitempty" validate:"omitempty,gte=0,lte=1" jsonschema:"minimum=0,maximum=1"`
	FillMaxHeight *float64 `mapstructure:"fill_max_height" json:"fill_max_height,omitempty" validate:"omitempty,gte=0,lte=1" jsonschema:"minimum=0,maximum=1"`
	FillMaxSize   *float64 `mapstructure:"fill_max_size" json:"fill_max_size,omitempty" validate:"omitempty,gte=0,lte=1" jsonschema:"minimum=0,maximum=1"`
}

// Document is the top level of a sheet file.
type Document struct {
	Styles map[string]Entry `mapstructure:"styles" json:"styles"`
}

// Loose converts the entry into untyped builder input.
func (e Entry) Loose() style.Loose {
	return style.Loose{
		Padding:       e.Padding,
		Background:    e.Background,
		Border:        e.Border,
		Width:         deref(e.Width),
		Height:        deref(e.Height),
		FillMaxWidth:  deref(e.FillMaxWidth),
		FillMaxHeight: deref(e.FillMaxHeight),
		FillMaxSize:   deref(e.FillMaxSize),
	}
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Error locates a failure within a sheet file.
type Error struct {
	Path  string
	Style string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Style != "" {
		return fmt.Sprintf("sheet %s: style %q: %s", e.Path, e.Style, e.Err)
	}
	return fmt.Sprintf("sheet %s: %s", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Sheet holds resolved styles.
type Sheet struct {
	Path   string
	styles map[string]style.Flat
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and resolves the sheet at path. Every malformed style and
// every unknown key is reported; the sheet is only returned when all of
// them resolve.
func Load(path string) (*Sheet, error) {
	data, err := afero.ReadFile(filesystem.API(), path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	raw, err := unmarshal(path, data)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	doc, decodeErr := decodeDocument(path, raw)
	s, err := FromDocument(path, doc)
	if err = multierr.Append(decodeErr, err); err != nil {
		return nil, err
	}

	return s, nil
}

// FromDocument validates and resolves an already decoded document.
func FromDocument(path string, doc Document) (*Sheet, error) {
	s := &Sheet{Path: path, styles: make(map[string]style.Flat, len(doc.Styles))}

	var errs error
	for _, name := range lo.Keys(doc.Styles) {
		entry := doc.Styles[name]

		if err := validate.Struct(entry); err != nil {
			errs = multierr.Append(errs, &Error{Path: path, Style: name, Err: err})
			continue
		}

		flat, err := entry.Loose().Flat()
		if err != nil {
			errs = multierr.Append(errs, &Error{Path: path, Style: name, Err: err})
			continue
		}
		s.styles[name] = *flat
	}

	if errs != nil {
		return nil, errs
	}

	log.WithFields(logrus.Fields{"path": path, "styles": len(s.styles)}).Debug("sheet loaded")
	return s, nil
}

// Names lists the style names in lexical order.
func (s *Sheet) Names() []string {
	names := lo.Keys(s.styles)
	sort.Strings(names)
	return names
}

// Len reports the number of styles.
func (s *Sheet) Len() int {
	return len(s.styles)
}

// Flat returns a copy of the named style's builder, for callers that want
// to add a click handler or override fields before building.
func (s *Sheet) Flat(name string) (style.Flat, bool) {
	flat, ok := s.styles[name]
	return flat, ok
}

// Lookup builds the named style's chain.
func (s *Sheet) Lookup(name string) (modifier.Chain, bool) {
	flat, ok := s.styles[name]
	if !ok {
		return modifier.Empty, false
	}
	return flat.Build(), true
}

// Suggest returns the style name closest to name by edit distance, or "" for an empty sheet.
func (s *Sheet) Suggest(name string) string {
	names := s.Names()
	if len(names) == 0 {
		return ""
	}
	return lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// Filter returns the style names fuzzily matching query, best match first.
// An empty query matches every style.
func (s *Sheet) Filter(query string) []string {
	if query == "" {
		return s.Names()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, s.Names())
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}
