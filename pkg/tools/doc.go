// Package tools provides tool dispatch and MCP (Model Context Protocol) integration.
//
// It is organized into sub-packages:
//   - [github.com/openclaw/memos-mcp/pkg/tools/toolbox]: Tool type and ordered ToolBox for registering, validating, and dispatching tool calls
//   - [github.com/openclaw/memos-mcp/pkg/tools/mcpserver]: MCP server using the official MCP Go SDK for exposing a ToolBox over the MCP protocol
//
// The toolbox sub-package is the foundation layer; mcpserver depends on it
// for the Tool type and routes every SDK call through ToolBox.Call. The
// mcpserver package is a thin wrapper around the official MCP Go SDK
// (github.com/modelcontextprotocol/go-sdk).
package tools
