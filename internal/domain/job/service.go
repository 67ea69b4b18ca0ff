package job

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/linkscout/internal/domain"
	"github.com/honeycarbs/linkscout/internal/domain/market"
)

// analysisSample is how many postings a market analysis draws on.
const analysisSample = 100

// Service exposes the job-market operations backing the MCP tools. Every
// invocation is independent; nothing persists across calls.
type Service interface {
	Search(ctx context.Context, query domain.SearchQuery) (domain.JobSearchResult, error)
	Details(ctx context.Context, ref string) (domain.JobDetails, error)
	FindCompany(ctx context.Context, name string) (domain.Company, error)
	CompanyJobs(ctx context.Context, company string, limit int) (domain.JobSearchResult, error)
	AnalyzeMarket(ctx context.Context, role, location string) (domain.MarketSummary, error)
	SearchPeople(ctx context.Context, keywords string, limit int) ([]domain.Person, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	clock    func() time.Time
}

// WithProvider sets the job data backend
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider) (Service, error) {
	return NewService(WithProvider(provider))
}

type service struct {
	provider Provider
	clock    func() time.Time
}

func (s *service) Search(ctx context.Context, query domain.SearchQuery) (domain.JobSearchResult, error) {
	if query.Keywords == "" {
		return domain.JobSearchResult{}, fmt.Errorf("keywords are required")
	}

	query.Limit = clampLimit(query.Limit, s.provider.DefaultLimit())

	result, err := s.provider.Search(ctx, query)
	if err != nil {
		return domain.JobSearchResult{Query: query, SourceURL: result.SourceURL}, err
	}

	result.Query = query
	result.Source = s.provider.Name()
	result.FetchedAt = s.clock()
	return result, nil
}

func (s *service) Details(ctx context.Context, ref string) (domain.JobDetails, error) {
	if ref == "" {
		return domain.JobDetails{}, fmt.Errorf("job URL or ID is required")
	}
	return s.provider.Details(ctx, ref)
}

func (s *service) FindCompany(ctx context.Context, name string) (domain.Company, error) {
	if name == "" {
		return domain.Company{}, fmt.Errorf("company name is required")
	}
	return s.provider.FindCompany(ctx, name)
}

// CompanyJobs reuses the search path with the company name as keywords.
func (s *service) CompanyJobs(ctx context.Context, company string, limit int) (domain.JobSearchResult, error) {
	if company == "" {
		return domain.JobSearchResult{}, fmt.Errorf("company name is required")
	}

	return s.Search(ctx, domain.SearchQuery{
		Keywords: company,
		Limit:    limit,
	})
}

// AnalyzeMarket samples up to analysisSample postings from the past month
// and aggregates them directly from the normalized records.
func (s *service) AnalyzeMarket(ctx context.Context, role, location string) (domain.MarketSummary, error) {
	if role == "" {
		return domain.MarketSummary{}, fmt.Errorf("role is required")
	}

	result, err := s.Search(ctx, domain.SearchQuery{
		Keywords:   role,
		Location:   location,
		PostedTime: "past_month",
		Limit:      analysisSample,
	})
	if err != nil {
		return domain.MarketSummary{}, err
	}

	return market.Summarize(role, location, result.Jobs), nil
}

func (s *service) SearchPeople(ctx context.Context, keywords string, limit int) ([]domain.Person, error) {
	if keywords == "" {
		return nil, fmt.Errorf("keywords are required")
	}
	return s.provider.SearchPeople(ctx, keywords, limit)
}

// clampLimit applies the backend default and the absolute ceiling of 100.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}
