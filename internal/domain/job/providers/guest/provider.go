package guest

import (
	"context"
	"fmt"

	"github.com/honeycarbs/linkscout/internal/domain"
	jobdomain "github.com/honeycarbs/linkscout/internal/domain/job"
	"github.com/honeycarbs/linkscout/pkg/linkedin"
)

// scrapeClient describes the subset of the guest client used by the provider.
type scrapeClient interface {
	SearchJobs(ctx context.Context, query linkedin.SearchQuery) (linkedin.SearchPage, error)
	JobDetails(ctx context.Context, ref string) (linkedin.JobDetails, error)
	FindCompany(ctx context.Context, name string) (linkedin.Company, error)
	DefaultLimit() int
}

// Provider implements job.Provider by scraping public job pages
type Provider struct {
	client scrapeClient
}

// NewProvider builds a guest (scraping) provider
func NewProvider(client scrapeClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("guest provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "guest"
}

// DefaultLimit reports the scraping result cap.
func (p *Provider) DefaultLimit() int {
	return p.client.DefaultLimit()
}

// Search scrapes a public search page and returns normalized jobs.
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
			ID:       j.ID,
			Title:    j.Title,
			Company:  j.Company,
			Location: j.Location,
			Posted:   j.Posted,
			URL:      j.URL,
			Source:   p.Name(),
		})
	}

	return result, nil
}

// Details fetches one posting page.
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

// FindCompany probes the best-guess public profile URL.
func (p *Provider) FindCompany(ctx context.Context, name string) (domain.Company, error) {
	c, err := p.client.FindCompany(ctx, name)
	if err != nil {
		return domain.Company{Name: name}, err
	}

	return domain.Company{
		Name:      c.Name,
		ID:        c.ID,
		Tagline:   c.Tagline,
		URL:       c.URL,
		Found:     c.Found,
		LookupURL: c.LookupURL,
	}, nil
}

// SearchPeople has no public-page equivalent.
func (p *Provider) SearchPeople(ctx context.Context, keywords string, limit int) ([]domain.Person, error) {
	_ = ctx
	_ = keywords
	_ = limit
	return nil, domain.ErrUnsupported
}

var _ jobdomain.Provider = (*Provider)(nil)
