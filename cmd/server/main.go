package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	identityapp "github.com/expenze/backend/internal/application/identity"
	planningapp "github.com/expenze/backend/internal/application/planning"
	settingsapp "github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/application/sms"
	"github.com/expenze/backend/internal/infrastructure/auth"
	"github.com/expenze/backend/internal/infrastructure/config"
	"github.com/expenze/backend/internal/infrastructure/logger"
	"github.com/expenze/backend/internal/infrastructure/mail"
	"github.com/expenze/backend/internal/infrastructure/migration"
	"github.com/expenze/backend/internal/infrastructure/persistence"
	"github.com/expenze/backend/internal/infrastructure/persistence/models"
	"github.com/expenze/backend/internal/interfaces/http/handler"
	"github.com/expenze/backend/internal/interfaces/http/middleware"
	"github.com/expenze/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Expenze backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if err := prepareSchema(cfg, db, log); err != nil {
		log.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	verificationRepo := persistence.NewGormVerificationRepository(db.DB)
	emailChangeRepo := persistence.NewGormEmailChangeRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	templateRepo := persistence.NewGormTemplateRepository(db.DB)
	planRepo := persistence.NewGormMonthPlanRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	salaryRepo := persistence.NewGormSalaryRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Services
	settingsService := settingsapp.NewService(settingRepo, log)
	sender := buildMailSender(cfg, settingsService, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	authService := identityapp.NewAuthService(userRepo, verificationRepo, jwtService, sender, settingsService, log)
	userService := identityapp.NewUserService(userRepo, emailChangeRepo, sender, settingsService, log)
	categoryService := planningapp.NewCategoryService(categoryRepo, log)
	templateService := planningapp.NewTemplateService(templateRepo, categoryRepo, log)
	planService := planningapp.NewPlanService(planRepo, templateRepo, itemRepo, log)
	monthService := planningapp.NewMonthService(planRepo, itemRepo, categoryRepo, salaryRepo, log)
	itemService := planningapp.NewItemService(planRepo, itemRepo, categoryRepo, log)
	salaryService := planningapp.NewSalaryService(salaryRepo, log)
	reportService := planningapp.NewReportService(reportRepo, log)
	smsParser := sms.NewParser(log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureAdmin(seedCtx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}
	cancelSeed()

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		engine.Use(pathPrefixLimit("/api/v1/auth/",
			middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine)
	r.Register(
		handler.NewSystemHandler(version),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewAdminHandler(userService, settingsService),
		handler.NewSettingsHandler(settingsService),
		handler.NewCategoryHandler(categoryService),
		handler.NewTemplateHandler(templateService),
		handler.NewMonthHandler(monthService, planService),
		handler.NewItemHandler(itemService),
		handler.NewSalaryHandler(salaryService),
		handler.NewReportHandler(reportService),
		handler.NewSMSHandler(smsParser),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// prepareSchema brings the database up to date. Postgres runs versioned
// SQL migrations; SQLite syncs the schema directly since a single-file
// local database has no migration history worth preserving.
func prepareSchema(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	if cfg.Database.Driver == "sqlite" {
		return db.DB.AutoMigrate(
			&models.UserModel{},
			&models.VerificationModel{},
			&models.EmailChangeModel{},
			&models.CategoryModel{},
			&models.TemplateModel{},
			&models.MonthPlanModel{},
			&models.ItemModel{},
			&models.SalaryModel{},
			&models.SettingModel{},
		)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	migrator, err := migration.New(sqlDB, migrationsPath, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = migrator.Close()
	}()
	return migrator.Up()
}

// buildMailSender wires OTP delivery. With mail disabled, codes are
// written to the log instead, which is what local development wants.
func buildMailSender(cfg *config.Config, settingsService *settingsapp.Service, log *zap.Logger) mail.Sender {
	if !cfg.Mail.Enabled {
		return mail.NewLogSender(log)
	}
	return mail.NewSMTPSender(func() mail.Settings {
		s := mail.Settings{
			Provider: cfg.Mail.Provider,
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		}
		snap := settingsService.Snapshot(context.Background())
		if snap.EmailProvider != "" {
			s.Provider = snap.EmailProvider
		}
		if snap.EmailHost != "" {
			s.Host = snap.EmailHost
			s.Port = snap.EmailPort
		}
		if snap.EmailUser != "" {
			s.Username = snap.EmailUser
		}
		if snap.EmailPassword != "" {
			s.Password = snap.EmailPassword
		}
		if snap.EmailFrom != "" {
			s.From = snap.EmailFrom
		}
		return s
	}, log)
}

// pathPrefixLimit applies limit only to requests under prefix.
func pathPrefixLimit(prefix string, limiter *middleware.RateLimiter) gin.HandlerFunc {
	limit := middleware.RateLimit(limiter)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			limit(c)
			return
		}
		c.Next()
	}
}

// healthHandler reports liveness including database reachability.
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
