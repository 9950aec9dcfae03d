package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/catalog"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/memory"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	redisinfra "trivia-quiz-service/internal/infra/redis"
	"trivia-quiz-service/internal/quiz"
	transport "trivia-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" && cfg.Quiz.File == "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	loader, closeLoader, err := newCatalogLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	catalogTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var catalogs app.CatalogRepository
	if redisClient != nil {
		catalogs = redisinfra.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		store = memory.NewSessionStore()
	}

	catalogID := cfg.CatalogID(catalog.DefaultID)
	c, err := catalogs.GetCatalog(ctx, catalogID)
	if err != nil {
		return err
	}
	if err := catalog.Validate(c); err != nil {
		return err
	}
	service := app.NewQuizService(store, catalogs, catalogID, quiz.NewController(quiz.DefaultSource))
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s (catalog %q)", finalPort, catalogID)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newCatalogLoader picks the catalog source: a YAML file, Postgres, or the built-in catalog.
func newCatalogLoader(ctx context.Context, cfg config.Config) (memory.CatalogLoader, func(), error) {
	switch {
	case cfg.Quiz.File != "":
		log.Printf("loading catalogs from %s", cfg.Quiz.File)
		return catalog.NewFileLoader(cfg.Quiz.File), func() {}, nil
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("loading catalogs from postgres")
		return pgloader.NewCatalogLoader(pool), pool.Close, nil
	default:
		log.Printf("using built-in catalog")
		return memory.NewStaticCatalogLoader(catalog.Default()), func() {}, nil
	}
}
