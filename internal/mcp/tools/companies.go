package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/internal/report"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// SearchCompaniesParams defines the arguments for the search_companies tool
type SearchCompaniesParams struct {
	CompanyName string `json:"company_name" jsonschema:"Company name to search for"`
}

// CompanyJobsParams defines the arguments for the get_company_jobs tool
type CompanyJobsParams struct {
	CompanyName string `json:"company_name" jsonschema:"Company name (e.g. 'Google')"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Maximum number of jobs to return (capped at 100)"`
}

type searchCompaniesTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t searchCompaniesTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchCompaniesParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &SearchCompaniesParams{}
	}

	if t.logger != nil {
		t.logger.Info("search_companies request", "company", params.CompanyName)
	}

	company, err := t.service.FindCompany(ctx, params.CompanyName)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("search_companies failed", "err", err, "company", params.CompanyName)
		}
		return errorResult(err), nil, nil
	}

	return textResult(report.Company(company)), nil, nil
}

type companyJobsTool struct {
	service job.Service
	logger  *logging.Logger
}

func (t companyJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *CompanyJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &CompanyJobsParams{}
	}

	if t.logger != nil {
		t.logger.Info("get_company_jobs request", "company", params.CompanyName, "limit", params.Limit)
	}

	result, err := t.service.CompanyJobs(ctx, params.CompanyName, params.Limit)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_company_jobs failed", "err", err, "company", params.CompanyName)
		}
		return errorResult(err), nil, nil
	}

	return textResult(report.Jobs(result)), nil, nil
}
