package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Hardcoded test data - each test is independent
	testJobID  = "3812345678"
	testJobURL = "https://www.linkedin.com/jobs/view/3812345678"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "linkscout-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testSearchJobs(ctx, session)
	testJobDetails(ctx, session)
	testSearchCompanies(ctx, session)
	testCompanyJobs(ctx, session)
	testAnalyzeMarket(ctx, session)
	testUnknownTool(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testSearchJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_jobs")

	params := &mcp.CallToolParams{
		Name: "search_jobs",
		Arguments: map[string]any{
			"keywords":    "AI Engineer",
			"location":    "Remote",
			"posted_time": "past_week",
			"limit":       5,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("search_jobs failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("search_jobs passed")
}

func testJobDetails(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get_job_details")

	params := &mcp.CallToolParams{
		Name: "get_job_details",
		Arguments: map[string]any{
			"job_url_or_id": testJobURL,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("get_job_details failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("get_job_details passed")
}

func testSearchCompanies(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_companies")

	params := &mcp.CallToolParams{
		Name: "search_companies",
		Arguments: map[string]any{
			"company_name": "Google",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("search_companies failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("search_companies passed")
}

func testCompanyJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get_company_jobs")

	params := &mcp.CallToolParams{
		Name: "get_company_jobs",
		Arguments: map[string]any{
			"company_name": "Google",
			"limit":        3,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("get_company_jobs failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("get_company_jobs passed")
}

func testAnalyzeMarket(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: analyze_job_market")

	params := &mcp.CallToolParams{
		Name: "analyze_job_market",
		Arguments: map[string]any{
			"role":     "Data Scientist",
			"location": "Remote",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("analyze_job_market failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("analyze_job_market passed")
}

func testUnknownTool(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: unknown tool name")

	params := &mcp.CallToolParams{
		Name:      "no_such_tool",
		Arguments: map[string]any{},
	}

	_, err := session.CallTool(ctx, params)
	if err == nil {
		log.Printf("expected an error for unknown tool, got none")
		return
	}

	fmt.Printf("unknown tool rejected as expected: %v\n", err)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
