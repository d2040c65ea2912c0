package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decor-cli/decor/constant"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrUnknownField is reported for keys that name no field of a sheet or style.
var ErrUnknownField = errors.New("unknown field")

// unmarshal decodes data by the file extension of path. Keys are kept
// exactly as written: style names are case-sensitive and may contain dots.
func unmarshal(path string, data []byte) (map[string]any, error) {
	var raw map[string]any

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported sheet type %q, expected one of %s", ext, strings.Join(constant.SheetTypes, ", "))
	}

	return raw, nil
}

// decodeDocument turns a raw sheet into a Document, reporting every key
// that does not belong to the format.
func decodeDocument(path string, raw map[string]any) (Document, error) {
	doc := Document{Styles: make(map[string]Entry)}

	var errs error
	for _, k := range sortedKeys(raw) {
		if k != "styles" {
			errs = multierr.Append(errs, &Error{Path: path, Err: fmt.Errorf("%w %q", ErrUnknownField, k)})
		}
	}

	styles, ok := raw["styles"].(map[string]any)
	if !ok && raw["styles"] != nil {
		return doc, multierr.Append(errs, &Error{Path: path, Err: fmt.Errorf("styles must be a table, got %T", raw["styles"])})
	}

	for _, name := range sortedKeys(styles) {
		entry, unknown, err := decodeEntry(styles[name])
		if err != nil {
			errs = multierr.Append(errs, &Error{Path: path, Style: name, Err: err})
			continue
		}
		if len(unknown) > 0 {
			for _, k := range unknown {
				errs = multierr.Append(errs, &Error{Path: path, Style: name, Err: fmt.Errorf("%w %q", ErrUnknownField, k)})
			}
			continue
		}
		doc.Styles[name] = entry
	}

	return doc, errs
}

// decodeEntry decodes one style and returns the keys it did not recognize.
func decodeEntry(value any) (Entry, []string, error) {
	var (
		entry Entry
		meta  mapstructure.Metadata
	)

	if _, ok := value.(map[string]any); !ok {
		return entry, nil, fmt.Errorf("style must be a table, got %T", value)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &entry,
		Metadata: &meta,
		TagName:  "mapstructure",
	})
	if err != nil {
		return entry, nil, err
	}
	if err := decoder.Decode(value); err != nil {
		return entry, nil, err
	}

	sort.Strings(meta.Unused)
	return entry, meta.Unused, nil
}

func sortedKeys(m map[string]any) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
