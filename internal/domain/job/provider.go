package job

import (
	"context"

	"github.com/honeycarbs/linkscout/internal/domain"
)

// Provider represents one job data backend (public page scraping or the
// authenticated REST API).
type Provider interface {
	// e.g. "guest" or "rest"
	Name() string

	// Search returns normalized jobs for a query along with the attempted URL.
	Search(ctx context.Context, query domain.SearchQuery) (domain.JobSearchResult, error)

	// Details loads a single posting by URL or ID.
	Details(ctx context.Context, ref string) (domain.JobDetails, error)

	// FindCompany resolves a company by name.
	FindCompany(ctx context.Context, name string) (domain.Company, error)

	// SearchPeople looks up public profiles. Backends without a people
	// endpoint return domain.ErrUnsupported.
	SearchPeople(ctx context.Context, keywords string, limit int) ([]domain.Person, error)

	// DefaultLimit reports the backend's result cap when the caller
	// passes none.
	DefaultLimit() int
}
