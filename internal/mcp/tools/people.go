package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/internal/report"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// SearchPeopleParams defines the arguments for the search_people tool
type SearchPeopleParams struct {
	Keywords string `json:"keywords" jsonschema:"Name or headline keywords to search profiles for"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of profiles to return (capped at 100)"`
}

type searchPeopleTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t searchPeopleTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchPeopleParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &SearchPeopleParams{}
	}

	if t.logger != nil {
		t.logger.Info("search_people request", "keywords", params.Keywords, "limit", params.Limit)
	}

	people, err := t.service.SearchPeople(ctx, params.Keywords, params.Limit)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("search_people failed", "err", err, "keywords", params.Keywords)
		}
		return errorResult(err), nil, nil
	}

	return textResult(report.People(params.Keywords, people)), nil, nil
}
