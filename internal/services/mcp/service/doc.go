// Package service runs the icon MCP server over stdio or streamable HTTP.
//
// Tool and resource semantics live in the domain package; this package only
// registers them and owns transport lifecycles.
package service
