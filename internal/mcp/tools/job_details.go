package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/internal/report"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// JobDetailsParams defines the arguments for the get_job_details tool
type JobDetailsParams struct {
	JobURLOrID string `json:"job_url_or_id" jsonschema:"Job URL or bare job ID (e.g. 'https://www.linkedin.com/jobs/view/3812345678' or '3812345678')"`
}

type jobDetailsTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t jobDetailsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &JobDetailsParams{}
	}

	if t.logger != nil {
		t.logger.Info("get_job_details request", "ref", params.JobURLOrID)
	}

	details, err := t.service.Details(ctx, params.JobURLOrID)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_job_details failed", "err", err, "url", details.URL)
		}
		return errorResult(err), nil, nil
	}

	return textResult(report.Details(details)), nil, nil
}
