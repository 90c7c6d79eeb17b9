package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/badges"
	"inkwell/internal/comicgen"
	"inkwell/internal/config"
	"inkwell/internal/handler"
	"inkwell/internal/middleware"
	"inkwell/internal/repository/postgres"
	"inkwell/internal/service"
	"inkwell/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// JWT verifier against the identity provider's JWKS endpoint
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Migrations run over database/sql; the pgx stdlib driver shares the DSN
	// with the pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open migration connection: %v", err)
	}
	if err := migrations.Migrate(migrationDB, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	migrationDB.Close()
	logger.Info("migrations applied", "table_prefix", cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	folderRepo := postgres.NewFolderRepository(repoConfig)
	journalRepo := postgres.NewJournalRepository(repoConfig)
	mediaRepo := postgres.NewMediaRepository(repoConfig)
	comicRepo := postgres.NewComicRepository(repoConfig)
	characterRepo := postgres.NewCharacterRepository(repoConfig)
	assignmentRepo := postgres.NewAssignmentRepository(repoConfig)
	streakRepo := postgres.NewStreakRepository(repoConfig)
	achievementRepo := postgres.NewAchievementRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	badgeRegistry, err := badges.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load badge registry: %v", err)
	}
	logger.Info("badge registry loaded", "badges", len(badgeRegistry.All()))

	comicGenerator := comicgen.NewPlaceholderGenerator("")

	gamificationService := service.NewGamificationService(
		streakRepo, achievementRepo, journalRepo, comicRepo, mediaRepo,
		badgeRegistry, txManager, logger,
	)
	folderService := service.NewFolderService(folderRepo, journalRepo, txManager, logger)
	journalService := service.NewJournalService(
		journalRepo, folderRepo, txManager, gamificationService,
		cfg.EnforceJournalLock, logger,
	)
	treeService := service.NewTreeService(folderRepo, journalRepo, logger)
	mediaService := service.NewMediaService(mediaRepo, journalRepo, logger)
	comicService := service.NewComicService(
		comicRepo, journalRepo, characterRepo, assignmentRepo,
		comicGenerator, txManager, gamificationService, logger,
	)
	characterService := service.NewCharacterService(characterRepo, assignmentRepo, journalRepo, logger)

	folderHandler := handler.NewFolderHandler(folderService, logger)
	journalHandler := handler.NewJournalHandler(journalService, logger)
	treeHandler := handler.NewTreeHandler(treeService, logger)
	mediaHandler := handler.NewMediaHandler(mediaService, comicService, logger)
	characterHandler := handler.NewCharacterHandler(characterService, logger)
	gamificationHandler := handler.NewGamificationHandler(gamificationService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", treeHandler.HealthCheck)

	// Tree projection
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}/rename", folderHandler.RenameFolder)
	mux.HandleFunc("PATCH /api/folders/{id}/move", folderHandler.MoveFolder)
	mux.HandleFunc("POST /api/folders/{id}/toggle-lock", folderHandler.ToggleLock)
	mux.HandleFunc("POST /api/folders/{id}/toggle-hidden", folderHandler.ToggleHidden)
	mux.HandleFunc("POST /api/folders/{id}/clone", folderHandler.CloneFolder)
	mux.HandleFunc("POST /api/folders/{id}/paste", folderHandler.Paste)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// Journal routes
	mux.HandleFunc("POST /api/journals", journalHandler.CreateJournal)
	mux.HandleFunc("GET /api/journals", journalHandler.ListJournals)
	mux.HandleFunc("GET /api/journals/{id}", journalHandler.GetJournal)
	mux.HandleFunc("PATCH /api/journals/{id}", journalHandler.UpdateJournal)
	mux.HandleFunc("PATCH /api/journals/{id}/rename", journalHandler.RenameJournal)
	mux.HandleFunc("PATCH /api/journals/{id}/move", journalHandler.MoveJournal)
	mux.HandleFunc("POST /api/journals/{id}/toggle-lock", journalHandler.ToggleLock)
	mux.HandleFunc("POST /api/journals/{id}/clone", journalHandler.CloneJournal)
	mux.HandleFunc("DELETE /api/journals/{id}", journalHandler.DeleteJournal)

	// Media and comic routes
	mux.HandleFunc("POST /api/journals/{id}/media", mediaHandler.AddMedia)
	mux.HandleFunc("GET /api/journals/{id}/media", mediaHandler.ListMedia)
	mux.HandleFunc("DELETE /api/media/{id}", mediaHandler.DeleteMedia)
	mux.HandleFunc("POST /api/journals/{id}/comic", mediaHandler.CreateComic)
	mux.HandleFunc("GET /api/journals/{id}/comic", mediaHandler.GetComic)

	// Character routes
	mux.HandleFunc("POST /api/characters", characterHandler.CreateCharacter)
	mux.HandleFunc("GET /api/characters", characterHandler.ListCharacters)
	mux.HandleFunc("GET /api/characters/{id}", characterHandler.GetCharacter)
	mux.HandleFunc("PATCH /api/characters/{id}", characterHandler.UpdateCharacter)
	mux.HandleFunc("DELETE /api/characters/{id}", characterHandler.DeleteCharacter)
	mux.HandleFunc("POST /api/journals/{id}/characters", characterHandler.AssignCharacter)
	mux.HandleFunc("GET /api/journals/{id}/characters", characterHandler.ListAssignments)

	// Gamification routes
	mux.HandleFunc("GET /api/streak", gamificationHandler.GetStreak)
	mux.HandleFunc("GET /api/badges", gamificationHandler.ListBadges)
	mux.HandleFunc("GET /api/achievements", gamificationHandler.ListAchievements)

	// Build middleware chain, applied in reverse order
	// Order: CORS → Recovery → Auth → Routes
	var root http.Handler = mux
	root = middleware.Auth(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-shutdown
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
