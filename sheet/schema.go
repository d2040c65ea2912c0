package sheet

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the sheet file format as JSON Schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := r.Reflect(&Document{})
	schema.Title = "decor style sheet"
	schema.Description = "Named styles rendered by decor"
	return schema
}
