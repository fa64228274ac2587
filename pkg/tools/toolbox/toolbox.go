package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrUnknownTool is returned by Call and Dispatch for names that were never
// registered.
var ErrUnknownTool = errors.New("Unknown tool") //nolint:staticcheck // message is shown verbatim to callers

// entry is a registered tool with its resolved input schema.
type entry struct {
	tool   Tool
	schema *jsonschema.Resolved
}

// ToolBox is an ordered catalog of tools. It validates arguments against each
// tool's input schema and routes calls by exact name.
type ToolBox struct {
	order      []string
	tools      map[string]*entry
	middleware []Middleware
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]*entry),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced in place. Register panics if a schema cannot
// be resolved, since the catalog is fixed at startup.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		e := &entry{tool: t}

		if t.InputSchema != nil {
			rs, err := t.InputSchema.Resolve(nil)
			if err != nil {
				panic(fmt.Sprintf("toolbox: tool %q: resolve schema: %v", t.Name, err))
			}
			e.schema = rs
		}

		if _, exists := tb.tools[t.Name]; !exists {
			tb.order = append(tb.order, t.Name)
		}
		tb.tools[t.Name] = e
	}
}

// Use appends middleware applied to every call. The first middleware added
// is the outermost.
func (tb *ToolBox) Use(mw ...Middleware) {
	tb.middleware = append(tb.middleware, mw...)
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	e, ok := tb.tools[name]
	if !ok {
		return Tool{}, false
	}
	return e.tool, true
}

// Tools returns all registered tools in registration order.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		result = append(result, tb.tools[name].tool)
	}
	return result
}

// Call validates input against the tool's schema and runs its handler
// through the middleware chain. Unknown names fail with ErrUnknownTool
// before any handler runs.
func (tb *ToolBox) Call(ctx context.Context, name string, input json.RawMessage) (any, error) {
	e, ok := tb.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if len(input) == 0 || string(input) == "null" {
		input = json.RawMessage("{}")
	}

	if e.schema != nil {
		var instance any
		if err := json.Unmarshal(input, &instance); err != nil {
			return nil, fmt.Errorf("%s: invalid input: %w", name, err)
		}
		if err := e.schema.Validate(instance); err != nil {
			return nil, fmt.Errorf("%s: invalid arguments: %w", name, err)
		}
	}

	h := e.tool.Handler
	for i := len(tb.middleware) - 1; i >= 0; i-- {
		h = tb.middleware[i](name, h)
	}

	return h(ctx, input)
}

// Dispatch is Call for callers holding a decoded argument map.
func (tb *ToolBox) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	if _, ok := tb.tools[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if args == nil {
		args = map[string]any{}
	}

	input, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("%s: encode arguments: %w", name, err)
	}

	return tb.Call(ctx, name, input)
}
