// Package bootstrap assembles application dependencies from configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/agent"
	"jobhunter-backend/internal/chat"
	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/janitor"
	"jobhunter-backend/internal/parser"
	"jobhunter-backend/internal/services/health"
	"jobhunter-backend/internal/session"
	"jobhunter-backend/internal/shared/config"
	"jobhunter-backend/internal/shared/server"
	"jobhunter-backend/internal/shared/storage/db"
	"jobhunter-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Corpus   corpus.Provider
	Registry *session.Registry
	Janitor  *janitor.Janitor
	Parser   parser.Client
	Health   *health.Service

	ChatHandler      *chat.Handler
	UploadsHandler   *uploads.Handler
	CorpusDevHandler *corpus.DevHandler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider, corpusSource, err := buildCorpus(cfg, sqlDB)
	if err != nil {
		return nil, err
	}

	registry := session.NewRegistry(cfg.SessionTTL, cfg.SessionCap)

	agentCfg := agent.Config{
		SearchLimit:   cfg.SearchLimit,
		CorpusTimeout: cfg.CorpusTimeout,
	}

	var parserClient parser.Client = parser.Placeholder{}
	if strings.TrimSpace(cfg.ParserURL) != "" {
		parserClient = parser.NewHTTPClient(cfg.ParserURL, cfg.ParserTimeout)
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Corpus:         provider,
		Registry:       registry,
		Janitor:        janitor.New(registry, cfg.SweepInterval),
		Parser:         parserClient,
		Health:         health.NewService(corpusSource, strings.TrimSpace(cfg.ParserURL) != ""),
		ChatHandler:    chat.NewHandler(registry, provider, agent.StaticAdvisor{}, agentCfg),
		UploadsHandler: uploads.NewHandler(parserClient),
	}

	if memRepo, ok := provider.(*corpus.MemoryRepo); ok {
		app.CorpusDevHandler = corpus.NewDevHandler(memRepo)
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Health:    app.Health,
		Chat:      app.ChatHandler,
		Uploads:   app.UploadsHandler,
		CorpusDev: app.CorpusDevHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.CorpusSource != "postgres" {
		return nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory corpus")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when CORPUS_SOURCE=postgres")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory corpus: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory corpus: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildCorpus picks the job source. The reported source reflects what was
// actually wired, not what was requested, so /health stays honest after a
// dev fallback.
func buildCorpus(cfg config.Config, sqlDB *sql.DB) (corpus.Provider, string, error) {
	switch cfg.CorpusSource {
	case "postgres":
		if sqlDB != nil {
			return &corpus.PGRepo{DB: sqlDB}, "postgres", nil
		}
		return corpus.NewMemoryRepo(), "memory", nil
	case "feed":
		if strings.TrimSpace(cfg.CorpusFeedURL) == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: CORPUS_FEED_URL empty; using in-memory corpus")
				return corpus.NewMemoryRepo(), "memory", nil
			}
			return nil, "", fmt.Errorf("CORPUS_FEED_URL is required when CORPUS_SOURCE=feed")
		}
		return corpus.NewFeedProvider(cfg.CorpusFeedURL, cfg.CorpusTimeout), "feed", nil
	default:
		return corpus.NewMemoryRepo(), "memory", nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "":
		return true
	default:
		return false
	}
}
