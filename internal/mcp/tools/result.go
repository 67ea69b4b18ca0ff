package tools

import (
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// errorResult converts an operation failure into the uniform user-visible
// text response. Every tool call produces exactly one text payload, success
// or failure; raw errors never propagate past the tool layer.
func errorResult(err error) *sdkmcp.CallToolResult {
	if errors.Is(err, domain.ErrUnsupported) {
		return textResult(fmt.Sprintf("Error: %v\n\nThis operation needs the REST API backend. Set LINKEDIN_BACKEND=api and provide credentials.", err))
	}
	return textResult(fmt.Sprintf("Error: %v\n\nPlease try again or adjust your search criteria.", err))
}
