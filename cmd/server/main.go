package main

import (
	"fmt"
	"log"

	googleauth "reelshelf/internal/auth/google"
	"reelshelf/internal/config"
	noopemail "reelshelf/internal/email/noop"
	sesemail "reelshelf/internal/email/ses"
	"reelshelf/internal/handler"
	"reelshelf/internal/port"
	"reelshelf/internal/repository/postgres"
	"reelshelf/internal/router"
	"reelshelf/internal/service"
	s3storage "reelshelf/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	movieRepo := postgres.NewMovieRepo(db)
	genreRepo := postgres.NewGenreRepo(db)
	shareRepo := postgres.NewShareRepo(db)
	watchlistRepo := postgres.NewWatchlistRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = sesemail.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noopemail.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(userRepo, authSvc, emailSender)
	movieSvc := service.NewMovieService(movieRepo, genreRepo)
	shareSvc := service.NewShareService(shareRepo, userRepo, movieRepo, genreRepo, emailSender)
	watchlistSvc := service.NewWatchlistService(watchlistRepo)
	posterSvc := service.NewPosterService(s3Client, movieRepo, genreRepo, cfg.S3)

	var socialAuthSvc service.SocialAuthService
	if cfg.Google.ClientID != "" {
		socialAuthSvc = service.NewSocialAuthService(userRepo, authSvc, emailSender,
			googleauth.NewVerifier(cfg.Google.ClientID))
	}

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, registrationSvc, socialAuthSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	shareH := handler.NewShareHandler(shareSvc)
	importH := handler.NewImportHandler(movieSvc, cfg.Import)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc, movieSvc)
	posterH := handler.NewPosterHandler(posterSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, movieH, shareH, importH, watchlistH, posterH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
