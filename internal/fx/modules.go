package fx

import (
	"github.com/PastaSec/orbitivexr/internal/config"
	"github.com/PastaSec/orbitivexr/internal/database"
	"github.com/PastaSec/orbitivexr/internal/logger"
	"github.com/PastaSec/orbitivexr/internal/repository"
	"github.com/PastaSec/orbitivexr/internal/server"
	"github.com/PastaSec/orbitivexr/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func provideMatchService(
	campaigns *repository.CampaignRepository,
	designers *repository.DesignerRepository,
	runs *repository.MatchRunRepository,
	log zerolog.Logger,
) *service.MatchService {
	return service.NewMatchService(campaigns, designers, runs, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewCampaignRepository),
	fx.Provide(repository.NewDesignerRepository),
	fx.Provide(repository.NewMatchRunRepository),
	// svc
	fx.Provide(service.NewCampaignService),
	fx.Provide(service.NewDesignerService),
	fx.Provide(provideMatchService),
	// server
	fx.Provide(server.NewServer),
)
