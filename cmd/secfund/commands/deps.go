package commands

import (
	"fmt"

	"github.com/agarcia/secfund/internal/external/edgar"
	"github.com/agarcia/secfund/internal/external/yahoo"
	"github.com/agarcia/secfund/internal/fundamentals"
	"github.com/agarcia/secfund/internal/occupancy"
	"github.com/agarcia/secfund/pkg/config"
	"github.com/agarcia/secfund/pkg/logger"
)

// deps holds the wired-up service graph shared by all commands.
type deps struct {
	cfg     *config.Config
	log     *logger.Logger
	edgar   *edgar.Client
	miner   *occupancy.Miner
	service *fundamentals.Service
}

// buildDeps loads config and wires the full service graph.
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	edgarClient := edgar.NewClient(cfg.EDGAR, log)
	yahooClient := yahoo.NewClient(cfg.Yahoo, log)
	miner := occupancy.NewMiner(edgarClient, log)
	service := fundamentals.NewService(edgarClient, yahooClient, miner, cfg.CacheTTL, log)

	return &deps{
		cfg:     cfg,
		log:     log,
		edgar:   edgarClient,
		miner:   miner,
		service: service,
	}, nil
}
