// Package report renders normalized records into deterministic text blocks.
// Rendering is a pure terminal step: nothing downstream re-parses it.
package report

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/linkscout/internal/domain"
)

// Jobs renders a job search result. List order is preserved from extraction.
func Jobs(result domain.JobSearchResult) string {
	query := result.Query

	if len(result.Jobs) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "No jobs found for %q", query.Keywords)
		if query.Location != "" {
			fmt.Fprintf(&b, " in %s", query.Location)
		}
		b.WriteString(".\n\nTry broadening your search or different keywords.\n")
		fmt.Fprintf(&b, "Search URL: %s\n", result.SourceURL)
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d jobs for %q", len(result.Jobs), query.Keywords)
	if query.Location != "" {
		fmt.Fprintf(&b, " in %s", query.Location)
	}
	if query.ExperienceLevel != "" {
		fmt.Fprintf(&b, " (%s level)", humanize(query.ExperienceLevel))
	}
	b.WriteString("\n")
	if result.Total > len(result.Jobs) {
		fmt.Fprintf(&b, "Showing %d of %d matching postings\n", len(result.Jobs), result.Total)
	}
	if query.PostedTime != "" {
		fmt.Fprintf(&b, "Posted: %s\n", humanize(query.PostedTime))
	}
	fmt.Fprintf(&b, "Full search: %s\n\n", result.SourceURL)

	for i, job := range result.Jobs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, job.Title)
		fmt.Fprintf(&b, "   Company: %s\n", job.Company)
		fmt.Fprintf(&b, "   Location: %s\n", job.Location)
		if job.Posted != "" {
			fmt.Fprintf(&b, "   Posted: %s\n", job.Posted)
		}
		fmt.Fprintf(&b, "   URL: %s\n\n", job.URL)
	}

	return b.String()
}

// Details renders a single job posting.
func Details(d domain.JobDetails) string {
	var b strings.Builder
	b.WriteString("Job Details\n\n")
	fmt.Fprintf(&b, "Title: %s\n", d.Title)
	fmt.Fprintf(&b, "Company: %s\n", d.Company)
	fmt.Fprintf(&b, "Location: %s\n", d.Location)
	fmt.Fprintf(&b, "URL: %s\n\n", d.URL)

	if d.Description != "" {
		fmt.Fprintf(&b, "Description:\n%s\n", d.Description)
	} else {
		b.WriteString("Description: Not available (may require login)\n")
	}

	return b.String()
}

// Company renders a company lookup result.
func Company(c domain.Company) string {
	if !c.Found {
		var b strings.Builder
		fmt.Fprintf(&b, "Company %q not found at its standard profile URL.\n\n", c.Name)
		fmt.Fprintf(&b, "Try searching manually: %s\n", c.LookupURL)
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found company: %s\n", c.Name)
	if c.URL != "" {
		fmt.Fprintf(&b, "URL: %s\n", c.URL)
	}
	if c.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", c.Tagline)
	}
	b.WriteString("\nUse 'get_company_jobs' to see their job openings.\n")
	return b.String()
}

// People renders a people search result.
func People(keywords string, people []domain.Person) string {
	if len(people) == 0 {
		return fmt.Sprintf("No profiles found for %q.\n", keywords)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d profile(s) for %q\n\n", len(people), keywords)
	for i, p := range people {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		if p.Headline != "" {
			fmt.Fprintf(&b, "   %s\n", p.Headline)
		}
		if p.ProfileURL != "" {
			fmt.Fprintf(&b, "   URL: %s\n", p.ProfileURL)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Market renders an aggregated market summary. Empty count mappings produce
// no ranked section at all.
func Market(s domain.MarketSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job Market Analysis for %q", s.Role)
	if s.Location != "" {
		fmt.Fprintf(&b, " in %s", s.Location)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total active postings: %d\n", s.Total)
	b.WriteString("Time period: past 30 days\n")

	if len(s.Companies) > 0 {
		b.WriteString("\nTop hiring companies:\n")
		for _, rc := range s.Companies {
			fmt.Fprintf(&b, "   - %s: %d opening(s)\n", rc.Key, rc.Count)
		}
	}

	if len(s.Locations) > 0 {
		b.WriteString("\nTop locations:\n")
		for _, rc := range s.Locations {
			fmt.Fprintf(&b, "   - %s: %d opening(s)\n", rc.Key, rc.Count)
		}
	}

	if len(s.Experience) > 0 {
		b.WriteString("\nExperience levels:\n")
		for _, rc := range s.Experience {
			fmt.Fprintf(&b, "   - %s: %d (%.1f%%)\n", humanize(rc.Key), rc.Count, rc.Share)
		}
	}

	return b.String()
}

// humanize turns enum values like "entry_level" into "entry level".
func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
