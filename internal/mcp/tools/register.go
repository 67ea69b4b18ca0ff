package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// RegisterAll wires every tool into the MCP server against the given job
// service. Handler log lines are scoped under the "tools" component.
func RegisterAll(server *sdkmcp.Server, svc job.Service, logger *logging.Logger) {
	if logger != nil {
		logger = logger.Named("tools")
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_jobs",
		Description: "Search for job postings with keyword, location, experience, recency and job-type filters",
	}, searchJobsTool{service: svc, logger: logger}.handle)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_details",
		Description: "Get detailed information about a specific job posting by its ID or URL",
	}, jobDetailsTool{service: svc, logger: logger}.handle)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_companies",
		Description: "Search for companies by name",
	}, searchCompaniesTool{service: svc, logger: logger}.handle)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_company_jobs",
		Description: "Get active job postings from a specific company",
	}, companyJobsTool{service: svc, logger: logger}.handle)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "analyze_job_market",
		Description: "Analyze job market trends for a role: posting counts, top companies, location distribution",
	}, analyzeMarketTool{service: svc, logger: logger}.handle)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_people",
		Description: "Search public profiles by keywords (REST API backend only)",
	}, searchPeopleTool{service: svc, logger: logger}.handle)

	if logger != nil {
		logger.Info("tools registered", "tools", []string{
			"search_jobs", "get_job_details", "search_companies",
			"get_company_jobs", "analyze_job_market", "search_people",
		})
	}
}
