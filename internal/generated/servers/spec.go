package servers

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

// Request validation rules live in openapi.yaml as x-oapi-codegen-extra-tags
// so regeneration keeps the validate struct tags.
//
//go:generate go tool oapi-codegen -generate types -package servers -o types.gen.go openapi.yaml
//go:generate go tool oapi-codegen -generate echo-server -package servers -o server.gen.go openapi.yaml

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(rawSpec)
}
