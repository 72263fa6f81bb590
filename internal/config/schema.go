package config

import (
	"encoding/json"

	pkgconfig "github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&pkgconfig.Config{})
	schema.Title = "ReputationIndexor configuration"

	return json.MarshalIndent(schema, "", "  ")
}
