package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/middleware"
	"portfolio/internal/presentation"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/service/account"
	"portfolio/internal/service/content"
	"portfolio/internal/service/mutation"
	"portfolio/internal/session"
	"portfolio/internal/viewcache"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	if !cfg.IsConfigured() {
		log.Fatal("SUPABASE_URL, SUPABASE_ANON_KEY and SUPABASE_DB_URL must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(ctx, cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", pool.Config().MaxConns,
		"min_conns", pool.Config().MinConns,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	skillRepo := postgres.NewSkillRepository(repoConfig)
	aboutRepo := postgres.NewAboutRepository(repoConfig)
	contactRepo := postgres.NewContactRepository(repoConfig)

	// Presentation styles for skill categories and about sections
	styles, err := presentation.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load presentation styles: %v", err)
	}

	// Rendered views are cached per route; mutations invalidate them
	views := viewcache.New(cfg.ViewCacheTTL, logger)

	// Create services
	contentService := content.NewService(
		projectRepo,
		skillRepo,
		aboutRepo,
		contactRepo,
		content.NewAssembler(styles),
		views,
		logger,
	)
	projectService := mutation.NewProjectService(projectRepo, views, logger)
	skillService := mutation.NewSkillService(skillRepo, views, logger)
	aboutService := mutation.NewAboutService(aboutRepo, views, logger)
	contactService := mutation.NewContactService(contactRepo, views, logger)

	authClient := auth.NewGoTrueClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SignupRedirectURL, logger)
	accountService := account.NewService(authClient, logger)

	sessions, err := session.NewStore(cfg.SessionSecret, cfg.Environment == "prod")
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Create handlers
	portfolioHandler := handler.NewPortfolioHandler(contentService, logger)
	dashboardHandler := handler.NewDashboardHandler(contentService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	skillHandler := handler.NewSkillHandler(skillService, logger)
	aboutHandler := handler.NewAboutHandler(aboutService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)
	accountHandler := handler.NewAccountHandler(accountService, sessions, logger)

	contactLimiter := middleware.NewRateLimiter(cfg.ContactRatePerMinute)
	if err := contactLimiter.TrustProxies(cfg.TrustedProxies); err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireIdentity(h)
	}

	// Health check
	mux.HandleFunc("GET /health", portfolioHandler.HealthCheck)

	// Public read routes
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.Landing)
	mux.HandleFunc("GET /api/projects", portfolioHandler.ListProjects)
	mux.HandleFunc("GET /api/skills", portfolioHandler.ListSkills)
	mux.HandleFunc("GET /api/about", portfolioHandler.ListAbout)

	// Public contact form
	mux.Handle("POST /api/contact", contactLimiter.Limit(http.HandlerFunc(contactHandler.Submit)))

	// Account routes
	mux.HandleFunc("POST /api/auth/login", accountHandler.Login)
	mux.HandleFunc("POST /api/auth/signup", accountHandler.Signup)
	mux.HandleFunc("POST /api/auth/logout", accountHandler.Logout)
	mux.Handle("GET /api/auth/session", admin(accountHandler.Session))

	// Admin routes
	mux.Handle("GET /api/admin/dashboard", admin(dashboardHandler.Dashboard))
	mux.Handle("GET /api/admin/contacts", admin(dashboardHandler.ListContacts))

	mux.Handle("POST /api/admin/projects", admin(projectHandler.CreateProject))
	mux.Handle("PUT /api/admin/projects/{id}", admin(projectHandler.UpdateProject))
	mux.Handle("DELETE /api/admin/projects/{id}", admin(projectHandler.DeleteProject))

	mux.Handle("POST /api/admin/skills", admin(skillHandler.CreateSkill))
	mux.Handle("PUT /api/admin/skills/{id}", admin(skillHandler.UpdateSkill))
	mux.Handle("DELETE /api/admin/skills/{id}", admin(skillHandler.DeleteSkill))

	mux.Handle("POST /api/admin/about", admin(aboutHandler.CreateAbout))
	mux.Handle("PUT /api/admin/about/{id}", admin(aboutHandler.UpdateAbout))
	mux.Handle("DELETE /api/admin/about/{id}", admin(aboutHandler.DeleteAbout))

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	h = middleware.Authenticate(jwtVerifier, sessions, authClient, logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}
