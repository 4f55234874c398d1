package app

import (
	"fmt"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"github.com/clubstats/statsboard/internal/config"
	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	cacherepo "github.com/clubstats/statsboard/internal/infrastructure/repository/cache"
	"github.com/clubstats/statsboard/internal/infrastructure/repository/memory"
	"github.com/clubstats/statsboard/internal/infrastructure/repository/postgres"
	"github.com/clubstats/statsboard/internal/interfaces/web"
	"github.com/clubstats/statsboard/internal/platform/cache"
	"github.com/clubstats/statsboard/internal/platform/logging"
	"github.com/clubstats/statsboard/internal/platform/resilience"
	"github.com/clubstats/statsboard/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server

	provider *postgres.Provider
	logger   *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{logger: logger}

	var (
		matchRepo       match.Repository
		teamRepo        team.Repository
		playerStatsRepo playerstats.Repository
		teamStatsRepo   teamstats.Repository
	)

	switch cfg.DataSource {
	case config.DataSourceMemory:
		teams := memory.SeedTeams()
		matches := memory.SeedMatches()
		matchRepo = memory.NewMatchRepository(matches)
		teamRepo = memory.NewTeamRepository(teams)
		playerStatsRepo = memory.NewPlayerStatsRepository(memory.SeedPlayers(), teams, memory.SeedPlayerStatLines())
		teamStatsRepo = memory.NewTeamStatsRepository(teams, matches, memory.SeedTeamStatLines())
		logger.Info("data source ready", "kind", cfg.DataSource)
	case config.DataSourcePostgres:
		a.provider = postgres.NewProvider(
			cfg.DBURL,
			resilience.CircuitBreakerConfig{
				Enabled:          cfg.DBCircuitEnabled,
				FailureThreshold: cfg.DBCircuitFailureCount,
				OpenTimeout:      cfg.DBCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
			},
			logger,
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		matchRepo = postgres.NewMatchRepository(a.provider)
		teamRepo = postgres.NewTeamRepository(a.provider)
		playerStatsRepo = postgres.NewPlayerStatsRepository(a.provider)
		teamStatsRepo = postgres.NewTeamStatsRepository(a.provider)
		logger.Info("data source ready", "kind", cfg.DataSource, "db", dbNameFromURL(cfg.DBURL))
	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}

	var flushers []web.CacheFlusher
	if cfg.CacheEnabled {
		// Catalog entries (match and team lists) barely change mid-tournament,
		// stat aggregates refresh as new results land.
		catalogCache := cache.NewStore(cfg.CatalogCacheTTL)
		statsCache := cache.NewStore(cfg.StatsCacheTTL)

		matchRepo = cacherepo.NewMatchRepository(matchRepo, catalogCache)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, catalogCache)
		playerStatsRepo = cacherepo.NewPlayerStatsRepository(playerStatsRepo, statsCache)
		teamStatsRepo = cacherepo.NewTeamStatsRepository(teamStatsRepo, statsCache)
		flushers = append(flushers, catalogCache, statsCache)

		logger.Info("cache enabled",
			"catalog_ttl", cfg.CatalogCacheTTL,
			"stats_ttl", cfg.StatsCacheTTL,
		)
	}

	matchSvc := usecase.NewMatchService(matchRepo, teamStatsRepo, playerStatsRepo)
	tournamentSvc := usecase.NewTournamentService(playerStatsRepo, teamStatsRepo, logger)
	teamSvc := usecase.NewTeamService(teamRepo, teamStatsRepo)

	handler := web.NewHandler(matchSvc, tournamentSvc, teamSvc, flushers, logger)
	router := web.NewRouter(handler, logger)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if a.Server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return a, nil
}

// Close releases the database handle. Safe on a memory-backed app.
func (a *App) Close() error {
	if a.provider == nil {
		return nil
	}

	return a.provider.Close()
}
