// Package server implements the MCP (Model Context Protocol) server for
// picture transform tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the raster
// transforms of the imaging package through the MCP protocol.
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
// Picture Information:
//   - picture_load: Load a picture and get metadata
//   - picture_sample_color: Get the color at (row, col)
//   - picture_stats: Per-channel mean and standard deviation
//   - picture_dominant_colors: Extract a color palette
//
// Recolor:
//   - picture_recolor: Zero or isolate a channel, grayscale, or rotate channels
//   - picture_negative: Negate selected channels
//
// Mirrors:
//   - picture_mirror: Vertical, horizontal or diagonal mirror
//   - picture_mirror_temple: Mirror a bounded region about a column
//
// Composition:
//   - picture_copy: Copy one picture onto another at an offset
//   - picture_collage: Six-strip collage, mirrored
//   - picture_overlay: Combine channels of three pictures
//
// Edges:
//   - picture_edge_detection: Black/white edge map by color distance
//
// Transform tools write their result to output_path when one is given and
// otherwise return it inline as base64 PNG. Optional parameters that are
// omitted take their values from the server's config.Config.
//
// # Picture Caching
//
// Decoded pictures are cached by path for the lifetime of the process. Every
// tool works on a private copy, so transforms never leak into later calls.
// Writing to an output path evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.LoadConfig("picture-tools.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.NewWithConfig(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
