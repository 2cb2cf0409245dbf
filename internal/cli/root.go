// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shopfront/internal/api"
	"shopfront/internal/api/handlers"
	"shopfront/internal/config"
	"shopfront/internal/logging"
	"shopfront/internal/notify"
	"shopfront/internal/services"
	"shopfront/internal/services/auth"
	"shopfront/internal/storefront"
	"shopfront/internal/store"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile      string
	password     string
	port         int
	logLevel     string
	jwtSecret    string
	databasePath string
	filePath     string
	fileQuota    string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Storefront API & Admin Back-Office",
	Long:  `A REST API serving a bilingual storefront and the admin panel that manages its configuration document.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: SF_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: SF_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&databasePath, "database-path", "", "Path to the SQLite config database. (Env: SF_DATABASE_PATH)")
	RootCmd.PersistentFlags().StringVar(&filePath, "file-path", "", "Path to the JSON config file store. (Env: SF_FILE_PATH)")
	RootCmd.PersistentFlags().StringVar(&fileQuota, "file-quota", "", "Size ceiling for the file store (e.g. '5MB'). (Env: SF_FILE_QUOTA)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&password, "password", "", "Password for the 'admin' user. (Env: SF_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: SF_PORT)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: SF_JWT_SECRET)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("SF_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("SF_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("SF_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("SF_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SF_DATABASE_PATH"); v != "" {
		c.Storage.DatabasePath = v
	}
	if v := os.Getenv("SF_FILE_PATH"); v != "" {
		c.Storage.FilePath = v
	}
	if v := os.Getenv("SF_FILE_QUOTA"); v != "" {
		c.Storage.FileQuota = v
	}
	if v := os.Getenv("SF_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if databasePath != "" {
		c.Storage.DatabasePath = databasePath
	}
	if filePath != "" {
		c.Storage.FilePath = filePath
	}
	if fileQuota != "" {
		c.Storage.FileQuota = fileQuota
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "shopfront.db"
	}
	if c.Storage.FilePath == "" {
		c.Storage.FilePath = "website-config.json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.JWT.AccessDurationMin == 0 {
		c.JWT.AccessDurationMin = 60
	}
}

// openStore builds the dual-backend config store. A SQLite open failure is
// not fatal: the store starts in file-only mode, matching the runtime
// fallback when SQLite misbehaves later.
func openStore(bus *notify.Bus) (*store.Store, error) {
	var db store.Backend
	sqlite, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logging.Log.Warnf("Failed to open SQLite at %s, using file store only: %v", cfg.Storage.DatabasePath, err)
	} else {
		db = sqlite
	}

	fileStore := store.NewFileStore(cfg.Storage.FilePath, cfg.FileQuotaBytes)
	st := store.NewStore(db, fileStore, bus)
	if err := st.Open(); err != nil {
		return nil, fmt.Errorf("failed to open config store: %w", err)
	}
	return st, nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT Secret
	if cfg.JWTSecret == "" {
		if cfg.JWT.Secret != "" {
			logging.Log.Info("Using JWT secret loaded from config.toml.")
			cfg.JWTSecret = cfg.JWT.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.JWT.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	// Handle admin credentials
	if cfg.AdminPassword == "" {
		logging.Log.Warn("No admin password configured, using the factory default. Set SF_PASSWORD in production.")
		cfg.AdminPassword = "admin123"
	}
	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	creds := auth.Credentials{Username: "admin", PasswordHash: passwordHash}

	bus := notify.NewBus()
	st, err := openStore(bus)
	if err != nil {
		return err
	}
	defer st.Close()

	// Watch the config file so edits by other processes reach subscribers.
	watcher, err := notify.WatchFile(st.FilePath(), st.Reload, bus)
	if err != nil {
		logging.Log.Warnf("Config file watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime, st)
	tokenService := auth.NewTokenService(cfg)
	renderer := storefront.NewRenderer(st, bus)

	authMiddleware := auth.NewMiddleware(creds, tokenService)

	h := &handlers.Handlers{
		Info:      infoService,
		Product:   services.NewProductService(st),
		Promotion: services.NewPromotionService(st),
		Event:     services.NewEventService(st),
		Post:      services.NewPostService(st),
		Banner:    services.NewBannerService(st),
		Category:  services.NewCategoryService(st),
		Section:   services.NewSectionService(st),
		Settings:  services.NewSettingsService(st),
		Bridge:    services.NewBridgeService(st),
		Renderer:  renderer,
		Token:     tokenService,
		Creds:     creds,
		Cfg:       cfg,
	}

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (config file: %s, quota: %s)", serverAddr, cfg.Storage.FilePath, cfg.Storage.FileQuota)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
