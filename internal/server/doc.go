// Package server implements the MCP (Model Context Protocol) server for the recolor tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color inspection and
// replacement through the MCP protocol, so an assistant can look at an image,
// pick the color to swap and write the recolored file in one session.
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
// Inspection:
//   - image_load: Dimensions, format, alpha and palette information
//   - image_sample_color: Exact color at a pixel
//   - image_dominant_colors: Most common quantized colors
//
// Recoloring:
//   - image_count_matches: Pixels a recolor would touch, without writing
//   - image_recolor: Replace a color and write the output file
//
// Helpers:
//   - image_placeholder: Tiny base64 preview for blurred loading states
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32601: Method not found
//   - -32602: Invalid params
//   - -32000: Tool execution failed (data holds the error message)
//
// # Caching
//
// Decoded images are cached by path for the life of the process. image_recolor
// never modifies a cached image and evicts its output path, so a later call
// that reads the output sees the new file.
package server
