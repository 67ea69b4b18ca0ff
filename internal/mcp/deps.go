package mcp

import (
	"fmt"
	"net/http"

	"github.com/honeycarbs/linkscout/internal/config"
	"github.com/honeycarbs/linkscout/internal/domain/job"
	guestProvider "github.com/honeycarbs/linkscout/internal/domain/job/providers/guest"
	restProvider "github.com/honeycarbs/linkscout/internal/domain/job/providers/rest"
	"github.com/honeycarbs/linkscout/pkg/linkedin"
	"github.com/honeycarbs/linkscout/pkg/logging"
)

// Resources aggregates everything the tool layer needs.
type Resources struct {
	JobService job.Service
}

func buildResources(cfg config.Config, logger *logging.Logger) (Resources, error) {
	provider, err := provideProvider(cfg)
	if err != nil {
		return Resources{}, err
	}

	svc, err := job.NewServiceWithDeps(provider)
	if err != nil {
		return Resources{}, err
	}

	logger.Info("job provider initialized", "backend", provider.Name())
	return Resources{JobService: svc}, nil
}

// provideProvider selects the backend from config. The two backends are
// mutually exclusive deployments of the same tool surface.
func provideProvider(cfg config.Config) (job.Provider, error) {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	switch cfg.Backend {
	case config.BackendGuest:
		client := linkedin.NewGuestClient(linkedin.Config{
			HTTPClient: httpClient,
		})
		return guestProvider.NewProvider(client)

	case config.BackendAPI:
		client, err := linkedin.NewAPIClient(linkedin.Config{
			ClientID:     cfg.LinkedIn.ClientID,
			ClientSecret: cfg.LinkedIn.ClientSecret,
			AccessToken:  cfg.LinkedIn.AccessToken,
			BaseURL:      cfg.LinkedIn.BaseURL,
			HTTPClient:   httpClient,
		})
		if err != nil {
			return nil, err
		}
		return restProvider.NewProvider(client)

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
