package config

import (
	"github.com/invopop/jsonschema"
)

func GetJsonSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := r.Reflect(&Config{})
	schema.Title = "qumopa configuration"
	schema.Description = "Selects the files qumopa packs into the project archive"

	return schema
}
