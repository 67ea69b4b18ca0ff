package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/internal/report"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// AnalyzeMarketParams defines the arguments for the analyze_job_market tool
type AnalyzeMarketParams struct {
	Role     string `json:"role" jsonschema:"Job role to analyze (e.g. 'AI Engineer')"`
	Location string `json:"location,omitempty" jsonschema:"Location for the analysis (optional)"`
}

type analyzeMarketTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t analyzeMarketTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *AnalyzeMarketParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &AnalyzeMarketParams{}
	}

	if t.logger != nil {
		t.logger.Info("analyze_job_market request", "role", params.Role, "location", params.Location)
	}

	summary, err := t.service.AnalyzeMarket(ctx, params.Role, params.Location)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("analyze_job_market failed", "err", err, "role", params.Role)
		}
		return errorResult(err), nil, nil
	}

	if t.logger != nil {
		t.logger.Info("analyze_job_market completed",
			"role", params.Role,
			"total", summary.Total,
			"companies", len(summary.Companies),
		)
	}

	return textResult(report.Market(summary)), summary, nil
}
