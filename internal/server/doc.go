// Package server implements the MCP (Model Context Protocol) server for skin preview tools.
//
// This package provides a JSON-RPC 2.0 server that exposes skin validation,
// preview rendering and atlas inspection through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Skin Information:
//   - skin_load: Load a skin and get its metadata and layout
//   - skin_validate: Check the 64x32 / 64x64 size rule
//
// Rendering:
//   - skin_preview: Render the 16x32 front-view preview
//   - skin_regions: List the ordered region table
//   - skin_crop_part: Extract one atlas region
//   - skin_outline: Outline the atlas regions on an enlarged skin
//
// Color Operations:
//   - skin_sample_color: Get color at a texture or preview pixel
//   - skin_sample_colors_multi: Sample multiple points
//   - skin_palette: List the exact colors used, optionally for one atlas part
//
// Every tool taking a "model" argument accepts "classic" or "slim"; an
// absent model means classic.
//
// # Image Caching
//
// Loaded skins are cached by path for the lifetime of the process. Previews
// are rendered on each call; rendering is cheap and keeps the cache free of
// derived images.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A wrong-size image passed to a rendering tool fails with the observed
// size in data. skin_validate reports the same condition as a result
// instead of an error.
package server
