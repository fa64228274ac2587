package memotools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/openclaw/memos-mcp/pkg/memos"
	"github.com/openclaw/memos-mcp/pkg/tools/toolbox"
)

// ToolName identifies one of the memo tools.
type ToolName string

// Tool names, in catalog order.
const (
	ToolCreate ToolName = "memos_create"
	ToolList   ToolName = "memos_list"
	ToolGet    ToolName = "memos_get"
	ToolUpdate ToolName = "memos_update"
	ToolDelete ToolName = "memos_delete"
)

// definition is the static part of a tool: everything except its handler.
// schema builds a fresh schema for each ToolBox.
type definition struct {
	name        ToolName
	description string
	schema      func() *jsonschema.Schema
}

// definitions is the ordered tool catalog.
var definitions = []definition{
	{
		name:        ToolCreate,
		description: "Create a new memo. Content is Markdown. Visibility defaults to PRIVATE.",
		schema:      schemaOf[CreateMemoArgs](withVisibilityEnum),
	},
	{
		name:        ToolList,
		description: "List memos with optional filtering and pagination.",
		schema:      schemaOf[ListMemosArgs](),
	},
	{
		name:        ToolGet,
		description: "Get a single memo by ID.",
		schema:      schemaOf[GetMemoArgs](),
	},
	{
		name:        ToolUpdate,
		description: "Update an existing memo. Only specified fields are changed.",
		schema:      schemaOf[UpdateMemoArgs](withVisibilityEnum),
	},
	{
		name:        ToolDelete,
		description: "Delete a memo by ID. This action is irreversible.",
		schema:      schemaOf[DeleteMemoArgs](),
	},
}

// Names returns the tool names in catalog order.
func Names() []ToolName {
	names := make([]ToolName, 0, len(definitions))
	for _, d := range definitions {
		names = append(names, d.name)
	}
	return names
}

// Tools returns a ToolBox with the five memo tools in catalog order.
func (m *Memos) Tools() *toolbox.ToolBox {
	tb := toolbox.New()

	for _, d := range definitions {
		h := m.handler(d.name)
		if h == nil {
			panic(fmt.Sprintf("memotools: no handler for %s", d.name))
		}

		tb.Register(toolbox.Tool{
			Name:        string(d.name),
			Description: d.description,
			InputSchema: d.schema(),
			Handler:     h,
		})
	}

	return tb
}

// handler maps a tool name to its operation. Memo-returning tools pass the
// API body through unchanged.
func (m *Memos) handler(name ToolName) toolbox.Handler {
	switch name {
	case ToolCreate:
		return toolbox.Handle(m.createTool)
	case ToolList:
		return toolbox.Handle(m.listTool)
	case ToolGet:
		return toolbox.Handle(m.getTool)
	case ToolUpdate:
		return toolbox.Handle(m.updateTool)
	case ToolDelete:
		return toolbox.Handle(m.DeleteMemo)
	default:
		return nil
	}
}

// schemaOf returns a builder for the schema of T with refine applied. It
// panics if T cannot be described, since the catalog is fixed.
func schemaOf[T any](refine ...func(*jsonschema.Schema)) func() *jsonschema.Schema {
	return func() *jsonschema.Schema {
		s, err := toolbox.SchemaFor[T]()
		if err != nil {
			panic(err)
		}

		for _, fn := range refine {
			fn(s)
		}

		return s
	}
}

// withVisibilityEnum restricts the visibility property to known values.
func withVisibilityEnum(s *jsonschema.Schema) {
	prop, ok := s.Properties["visibility"]
	if !ok {
		return
	}

	prop.Enum = make([]any, 0, len(memos.Visibilities))
	for _, v := range memos.Visibilities {
		prop.Enum = append(prop.Enum, string(v))
	}
}
