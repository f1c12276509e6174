package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ToolDefinition declares one remotely invocable operation: a stable
// name, a human-readable description, a JSON Schema for its input and
// the handler that executes it. The same definitions back the direct
// in-process binding and the stdio tool-server, so the surface is
// declared exactly once.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     func(ctx context.Context, input json.RawMessage) (string, error)
}

// RawSchema returns the input schema serialized as JSON, for transports
// that want the schema as a raw document.
func (d ToolDefinition) RawSchema() (json.RawMessage, error) {
	return json.Marshal(d.InputSchema)
}

// GenerateSchema derives a JSON Schema from a Go input struct.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
