package rest

import (
	"context"
	"fmt"

	"github.com/honeycarbs/linkscout/internal/domain"
	jobdomain "github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/pkg/linkedin"
)

// apiClient describes the subset of the REST client used by the provider.
type apiClient interface {
	SearchJobs(ctx context.Context, query linkedin.SearchQuery) (linkedin.SearchPage, error)
	JobDetails(ctx context.Context, ref string) (linkedin.JobDetails, error)
	FindCompany(ctx context.Context, name string) (linkedin.Company, error)
	Organization(ctx context.Context, id string) (linkedin.Company, error)
	SearchPeople(ctx context.Context, keywords string, limit int) ([]linkedin.Person, error)
	DefaultLimit() int
}

// Provider implements job.Provider using the authenticated REST API
type Provider struct {
	client apiClient
}

// NewProvider builds a REST API provider
func NewProvider(client apiClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("rest provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "rest"
}

// DefaultLimit reports the API page size.
func (p *Provider) DefaultLimit() int {
	return p.client.DefaultLimit()
}

// Search queries the job search endpoint and returns normalized jobs.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) (domain.JobSearchResult, error) {
	page, err := p.client.SearchJobs(ctx, linkedin.SearchQuery{
		Keywords:        query.Keywords,
		Location:        query.Location,
		ExperienceLevel: query.ExperienceLevel,
		PostedTime:      query.PostedTime,
		JobType:         query.JobType,
		Remote:          query.Remote,
		Limit:           query.Limit,
	})

	result := domain.JobSearchResult{SourceURL: page.URL}
	if err != nil {
		return result, err
	}

	result.Total = page.Total
	result.Jobs = make([]domain.Job, 0, len(page.Jobs))
	for _, j := range page.Jobs {
		result.Jobs = append(result.Jobs, domain.Job{
			ID:              j.ID,
			Title:           j.Title,
			Company:         j.Company,
			Location:        j.Location,
			Posted:          j.Posted,
			URL:             j.URL,
			ExperienceLevel: j.ExperienceLevel,
			Source:          p.Name(),
		})
	}

	return result, nil
}

// Details fetches one posting by ID or URL.
func (p *Provider) Details(ctx context.Context, ref string) (domain.JobDetails, error) {
	d, err := p.client.JobDetails(ctx, ref)
	if err != nil {
		return domain.JobDetails{URL: d.URL}, err
	}

	return domain.JobDetails{
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		URL:         d.URL,
		Description: d.Description,
	}, nil
}

// FindCompany queries the company search endpoint. A search hit often omits
// the tagline, so a match is enriched from its organization record when
// needed; that follow-up is best effort and never fails the lookup.
func (p *Provider) FindCompany(ctx context.Context, name string) (domain.Company, error) {
	c, err := p.client.FindCompany(ctx, name)
	if err != nil {
		return domain.Company{Name: name, LookupURL: c.LookupURL}, err
	}

	company := domain.Company{
		Name:      c.Name,
		ID:        c.ID,
		Tagline:   c.Tagline,
		URL:       c.URL,
		Found:     c.Found,
		LookupURL: c.LookupURL,
	}

	if company.Found && company.Tagline == "" && company.ID != "" {
		if org, err := p.client.Organization(ctx, company.ID); err == nil {
			company.Tagline = org.Tagline
		}
	}

	return company, nil
}

// SearchPeople queries the people search endpoint.
func (p *Provider) SearchPeople(ctx context.Context, keywords string, limit int) ([]domain.Person, error) {
	people, err := p.client.SearchPeople(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Person, 0, len(people))
	for _, person := range people {
		out = append(out, domain.Person{
			Name:       person.Name,
			Headline:   person.Headline,
			ProfileURL: person.ProfileURL,
		})
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)
