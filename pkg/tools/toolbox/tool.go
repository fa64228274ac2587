package toolbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Handler executes a tool with the given JSON input. The returned value is
// serialized by the protocol layer.
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Tool represents an executable tool with a name, description, JSON Schema, and handler.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     Handler
}

// Handle adapts a typed function to a Handler. The input is decoded into In
// before fn is called.
func Handle[In, Out any](fn func(context.Context, In) (Out, error)) Handler {
	return func(ctx context.Context, input json.RawMessage) (any, error) {
		var in In
		if len(input) > 0 {
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, fmt.Errorf("invalid input: %w", err)
			}
		}

		return fn(ctx, in)
	}
}

// SchemaFor derives an object schema from the fields of In. Field
// descriptions come from `jsonschema` struct tags; fields tagged omitempty
// are optional. Unknown properties are not rejected.
func SchemaFor[In any]() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[In](nil)
	if err != nil {
		return nil, fmt.Errorf("toolbox: infer schema: %w", err)
	}

	s.AdditionalProperties = nil

	return s, nil
}
