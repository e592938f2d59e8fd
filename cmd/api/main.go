package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/ascent/internal/api"
	"github.com/limbo/ascent/internal/banner"
	"github.com/limbo/ascent/internal/db"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/internal/storage"
	"github.com/limbo/ascent/pkg/cleanup"
	"github.com/limbo/ascent/pkg/config"
	jwtservice "github.com/limbo/ascent/pkg/jwt_service"
	"github.com/limbo/ascent/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.Init(cfg.IsDevelopment(), cfg.GetString("SENTRY_DSN"))
	defer cleanup.CleanUp()

	if err := run(cfg, log); err != nil {
		log.Error("server error: " + err.Error())
		cleanup.CleanUp()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	jwt, err := jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 0))
	if err != nil {
		return fmt.Errorf("JWT_SECRET: %w", err)
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.GetBool("MIGRATE_ON_START", true) {
		sqlDB, err := db.Open(dbCfg.ConnString())
		if err != nil {
			return err
		}
		err = db.RunMigrations(bootCtx, sqlDB)
		sqlDB.Close()
		if err != nil {
			return err
		}
	}

	pool, err := repository.Connect(bootCtx, &dbCfg, int32(cfg.GetInt("POSTGRES_MAX_CONNS", 0)))
	if err != nil {
		return err
	}
	usersRepo := repository.NewUsersRepo(pool)
	imagesRepo := repository.NewImagesRepo(pool)
	gateway := journey.Gateway{
		Mountains:  repository.NewMountainsRepo(pool),
		Steps:      repository.NewStepsRepo(pool),
		Notes:      repository.NewNotesRepo(pool),
		Milestones: repository.NewMilestonesRepo(pool),
	}

	hub := service.NewSessionHub()
	providers := map[string]service.OAuthProvider{}
	appURL := strings.TrimSuffix(cfg.GetStringOr("APP_URL", "http://localhost:8080"), "/")
	if id := cfg.GetString("GITHUB_CLIENT_ID"); id != "" {
		providers[service.ProviderGitHub] = service.GitHubProvider(
			id,
			cfg.GetString("GITHUB_CLIENT_SECRET"),
			appURL+"/api/v1/auth/oauth/"+service.ProviderGitHub+"/callback",
		)
	}
	identity := service.NewIdentityService(usersRepo, jwt, hub, providers)
	journeys := service.NewJourneyService(gateway, usersRepo, cfg.GetDuration("JOURNEY_CACHE_TTL", service.DefaultJourneyCacheTTL))
	hub.Subscribe(service.AuditSessions(log))
	hub.Subscribe(journeys.HandleSession)

	rasterizer, err := banner.LaunchRod(cfg.GetString("CHROME_BIN"))
	if err != nil {
		return err
	}
	cleanup.Register(&cleanup.Job{Name: "closing browser", F: rasterizer.Close})
	previewer := banner.NewPreviewer(rasterizer, cfg.GetDuration("BANNER_DEBOUNCE", banner.DefaultDebounce), log,
		banner.WithPreviewTTL(cfg.GetDuration("BANNER_PREVIEW_TTL", banner.DefaultPreviewTTL)),
		banner.WithMaxPreviews(cfg.GetInt("BANNER_MAX_PREVIEWS", banner.DefaultMaxPreviews)),
		banner.WithMaxRenders(cfg.GetInt("BANNER_MAX_RENDERS", banner.DefaultMaxRenders)),
	)
	cleanup.Register(&cleanup.Job{
		Name: "stopping previewer",
		F: func() error {
			previewer.Stop()
			return nil
		},
	})

	var artifacts banner.ArtifactStore
	if bucket := cfg.GetString("S3_BUCKET"); bucket != "" {
		store, err := storage.NewS3Store(bootCtx, storage.S3Config{
			Region:        cfg.GetStringOr("S3_REGION", "us-east-1"),
			Bucket:        bucket,
			AccessKey:     cfg.GetString("S3_ACCESS_KEY"),
			SecretKey:     cfg.GetString("S3_SECRET_KEY"),
			Endpoint:      cfg.GetString("S3_ENDPOINT"),
			PresignExpiry: cfg.GetDuration("S3_PRESIGN_EXPIRY", 0),
		})
		if err != nil {
			return err
		}
		artifacts = store
	} else {
		log.Info("S3_BUCKET not set, banner uploads disabled")
	}

	banners := service.NewBannerService(journeys, imagesRepo, previewer, banner.NewExporter(rasterizer, artifacts))
	hub.Subscribe(banners.HandleSession)

	serv := api.New(&api.ServicesList{
		IdentityService: identity,
		JourneyService:  journeys,
		ImagesService:   service.NewImagesService(imagesRepo, journeys),
		WaitlistService: service.NewWaitlistService(repository.NewWaitlistRepo(pool)),
		AdminService:    service.NewAdminService(usersRepo, journeys, cfg.GetString("ADMIN_EMAIL")),
		BannerService:   banners,
		AllowedOrigins:  splitList(cfg.GetString("CORS_ALLOWED_ORIGINS")),
		AuthRedirect:    appURL + cfg.GetStringOr("AUTH_REDIRECT_PATH", "/dashboard"),
	})
	serv.MountEndpoints()

	srv := &http.Server{
		Addr:              cfg.GetStringOr("API_ADDRESS", ":8080"),
		Handler:           serv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info("shutdown initiated")
	ctx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	log.Info("server stopped")
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
