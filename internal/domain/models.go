package domain

import (
	"errors"
	"time"
)

// ErrUnsupported signals an operation the active backend cannot serve.
var ErrUnsupported = errors.New("operation not supported by this backend")

// Sentinel values substituted for missing record fields.
const (
	CompanyNotListed     = "Company not listed"
	LocationNotSpecified = "Location not specified"
	UnknownValue         = "Unknown"
)

// SearchQuery describes one job search request
type SearchQuery struct {
	Keywords        string
	Location        string
	ExperienceLevel string
	PostedTime      string
	JobType         string
	Remote          bool
	Limit           int
}

// Job is the normalized job posting entity. A Job is never materialized
// without a title.
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Posted          string
	URL             string
	ExperienceLevel string
	Source          string
}

// JobDetails extends a posting with its full description
type JobDetails struct {
	Title       string
	Company     string
	Location    string
	URL         string
	Description string
}

// Company is the normalized company entity
type Company struct {
	Name      string
	ID        string
	Tagline   string
	URL       string
	Found     bool
	LookupURL string
}

// Person is the normalized people search entity
type Person struct {
	Name       string
	Headline   string
	ProfileURL string
}

// JobSearchResult wraps job search output together with the query and the
// exact URL/endpoint that produced it. Total is the backend's match count
// and can exceed len(Jobs) when the result was truncated by a limit.
type JobSearchResult struct {
	Jobs      []Job
	Total     int
	Query     SearchQuery
	SourceURL string
	Source    string
	FetchedAt time.Time
}

// RankedCount is one entry of a descending count ranking. Share is only
// populated for the experience distribution.
type RankedCount struct {
	Key   string
	Count int
	Share float64
}

// MarketSummary aggregates a job record set into grouped counts
type MarketSummary struct {
	Role       string
	Location   string
	Total      int
	Companies  []RankedCount
	Locations  []RankedCount
	Experience []RankedCount
}
