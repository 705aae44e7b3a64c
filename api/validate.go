package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemas holds the compiled request-body schemas, keyed by file name
// without extension (e.g. "user_create").
var schemas = map[string]*jsonschema.Schema{}

func init() {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		panic(fmt.Sprintf("read embedded schemas: %v", err))
	}
	for _, e := range entries {
		b, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("read schema %s: %v", e.Name(), err))
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			panic(fmt.Sprintf("compile schema %s: %v", e.Name(), err))
		}
		schemas[strings.TrimSuffix(e.Name(), ".json")] = rs
	}
}

// validateBody checks data against the named embedded schema. It returns a
// human-readable description of the violations, empty when the body is valid.
// A non-nil error means the body could not be validated at all (e.g. it is
// not JSON).
func validateBody(ctx context.Context, name string, data []byte) (string, error) {
	rs, ok := schemas[name]
	if !ok {
		return "", fmt.Errorf("unknown schema %q", name)
	}

	verrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return "", err
	}
	if len(verrs) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i, v := range verrs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(v.Error())
	}

	return sb.String(), nil
}
