// Package domain maps MCP tools and resources onto the icon registry.
//
// Each tool has a definition constructor (IconListTool) and a handler
// constructor (IconListHandler) so the service package can register them
// without knowing their schemas.
package domain
