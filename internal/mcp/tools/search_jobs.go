package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain"
	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/internal/report"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool
type SearchJobsParams struct {
	Keywords        string `json:"keywords" jsonschema:"Job search keywords (e.g. 'AI Engineer')"`
	Location        string `json:"location,omitempty" jsonschema:"Location for the job search (e.g. 'San Francisco' or 'Remote')"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"One of internship, entry_level, associate, mid_senior, director, executive"`
	PostedTime      string `json:"posted_time,omitempty" jsonschema:"One of past_24h, past_week, past_month, any_time (default past_month)"`
	JobType         string `json:"job_type,omitempty" jsonschema:"One of full_time, part_time, contract, temporary, internship, volunteer"`
	Remote          bool   `json:"remote,omitempty" jsonschema:"Filter for remote jobs only"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Maximum number of results (capped at 100)"`
}

type searchJobsTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t searchJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &SearchJobsParams{}
	}

	query := domain.SearchQuery{
		Keywords:        params.Keywords,
		Location:        params.Location,
		ExperienceLevel: params.ExperienceLevel,
		PostedTime:      params.PostedTime,
		JobType:         params.JobType,
		Remote:          params.Remote,
		Limit:           params.Limit,
	}

	if t.logger != nil {
		t.logger.Info("search_jobs request",
			"keywords", query.Keywords,
			"location", query.Location,
			"limit", query.Limit,
		)
	}

	result, err := t.service.Search(ctx, query)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("search_jobs failed", "err", err, "url", result.SourceURL)
		}
		return errorResult(err), nil, nil
	}

	if t.logger != nil {
		t.logger.Info("search_jobs completed", "jobs", len(result.Jobs), "source", result.Source)
	}

	return textResult(report.Jobs(result)), nil, nil
}
