//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/honeycarbs/linkscout/internal/config"
	"github.com/honeycarbs/linkscout/internal/domain/job"
)

// InitializeResources creates Resources with the backend graph wired up
func InitializeResources(cfg config.Config) (Resources, error) {
	wire.Build(
		provideProvider,
		job.NewServiceWithDeps,
		wire.Struct(new(Resources), "JobService"),
	)

	return Resources{}, nil
}
