package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/linkscout/internal/domain"
)

func TestJobsRendersHeaderAndEntries(t *testing.T) {
	result := domain.JobSearchResult{
		Query: domain.SearchQuery{
			Keywords:        "AI Engineer",
			Location:        "Remote",
			ExperienceLevel: "mid_senior",
			PostedTime:      "past_week",
		},
		SourceURL: "https://www.linkedin.com/jobs/search/?keywords=AI+Engineer",
		Jobs: []domain.Job{
			{Title: "AI Engineer", Company: "Acme", Location: "Remote", Posted: "2 weeks ago", URL: "https://example.com/1"},
			{Title: "ML Engineer", Company: domain.CompanyNotListed, Location: domain.LocationNotSpecified, URL: "https://example.com/2"},
		},
	}

	out := Jobs(result)

	assert.Contains(t, out, `Found 2 jobs for "AI Engineer" in Remote (mid senior level)`)
	assert.Contains(t, out, "Posted: past week")
	assert.Contains(t, out, "Full search: https://www.linkedin.com/jobs/search/?keywords=AI+Engineer")

	assert.Contains(t, out, "1. AI Engineer")
	assert.Contains(t, out, "   Company: Acme")
	assert.Contains(t, out, "2. ML Engineer")
	assert.Contains(t, out, "   Company: Company not listed")
	assert.Contains(t, out, "   Location: Location not specified")

	// The second entry has no posted date, so its line is omitted entirely.
	assert.Equal(t, 2, strings.Count(out, "Posted:"))
}

func TestJobsTruncatedResultShowsTotal(t *testing.T) {
	result := domain.JobSearchResult{
		Query:     domain.SearchQuery{Keywords: "go"},
		SourceURL: "https://example.com/search",
		Total:     42,
		Jobs: []domain.Job{
			{Title: "Engineer", Company: "Acme", Location: "Berlin", URL: "https://example.com/1"},
		},
	}

	out := Jobs(result)
	assert.Contains(t, out, "Showing 1 of 42 matching postings")

	// No truncation line when everything matched is listed.
	result.Total = 1
	assert.NotContains(t, Jobs(result), "matching postings")
}

func TestJobsEmptyResultPointsAtSearchURL(t *testing.T) {
	result := domain.JobSearchResult{
		Query:     domain.SearchQuery{Keywords: "unobtainium", Location: "Mars"},
		SourceURL: "https://www.linkedin.com/jobs/search/?keywords=unobtainium",
	}

	out := Jobs(result)

	assert.Contains(t, out, `No jobs found for "unobtainium" in Mars`)
	assert.Contains(t, out, "Try broadening your search")
	assert.Contains(t, out, "Search URL: https://www.linkedin.com/jobs/search/?keywords=unobtainium")
}

func TestDetails(t *testing.T) {
	out := Details(domain.JobDetails{
		Title:       "Staff Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		URL:         "https://www.linkedin.com/jobs/view/1",
		Description: "Build distributed systems.",
	})

	assert.Contains(t, out, "Title: Staff Engineer")
	assert.Contains(t, out, "Description:\nBuild distributed systems.")

	// Missing description gets an explicit placeholder line.
	out = Details(domain.JobDetails{Title: "N/A"})
	assert.Contains(t, out, "Description: Not available (may require login)")
}

func TestCompanyFoundAndNotFound(t *testing.T) {
	found := Company(domain.Company{
		Name:    "Acme",
		URL:     "https://www.linkedin.com/company/acme",
		Tagline: "We make anvils",
		Found:   true,
	})
	assert.Contains(t, found, "Found company: Acme")
	assert.Contains(t, found, "Tagline: We make anvils")
	assert.Contains(t, found, "get_company_jobs")

	missing := Company(domain.Company{
		Name:      "Ghost Startup",
		LookupURL: "https://www.linkedin.com/search/results/companies/?keywords=Ghost+Startup",
		Found:     false,
	})
	assert.Contains(t, missing, `Company "Ghost Startup" not found`)
	assert.Contains(t, missing, "Try searching manually: https://www.linkedin.com/search/results/companies/?keywords=Ghost+Startup")
}

func TestPeople(t *testing.T) {
	out := People("ada", []domain.Person{
		{Name: "Ada Lovelace", Headline: "Engineer", ProfileURL: "https://www.linkedin.com/in/ada"},
		{Name: "N/A"},
	})
	assert.Contains(t, out, `Found 2 profile(s) for "ada"`)
	assert.Contains(t, out, "1. Ada Lovelace")
	assert.Contains(t, out, "   URL: https://www.linkedin.com/in/ada")

	assert.Contains(t, People("nobody", nil), `No profiles found for "nobody"`)
}

func TestMarketOmitsEmptySections(t *testing.T) {
	out := Market(domain.MarketSummary{Role: "Data Scientist", Location: "Remote"})

	assert.Contains(t, out, `Job Market Analysis for "Data Scientist" in Remote`)
	assert.Contains(t, out, "Total active postings: 0")
	assert.Contains(t, out, "Time period: past 30 days")
	assert.NotContains(t, out, "Top hiring companies:")
	assert.NotContains(t, out, "Top locations:")
	assert.NotContains(t, out, "Experience levels:")
}

func TestMarketRendersRankedSections(t *testing.T) {
	out := Market(domain.MarketSummary{
		Role:  "Engineer",
		Total: 4,
		Companies: []domain.RankedCount{
			{Key: "Acme", Count: 3},
			{Key: "Globex", Count: 1},
		},
		Locations: []domain.RankedCount{
			{Key: "Berlin", Count: 4},
		},
		Experience: []domain.RankedCount{
			{Key: "mid_senior", Count: 2, Share: 50},
			{Key: "entry_level", Count: 1, Share: 25},
		},
	})

	assert.Contains(t, out, "Top hiring companies:\n   - Acme: 3 opening(s)\n   - Globex: 1 opening(s)")
	assert.Contains(t, out, "Top locations:\n   - Berlin: 4 opening(s)")
	assert.Contains(t, out, "   - mid senior: 2 (50.0%)")
	assert.Contains(t, out, "   - entry level: 1 (25.0%)")
}
