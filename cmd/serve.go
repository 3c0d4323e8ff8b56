package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/controleponto/ponto/internal/config"
	"github.com/controleponto/ponto/internal/identity"
	"github.com/controleponto/ponto/internal/store"
	"github.com/controleponto/ponto/internal/web"
	"github.com/controleponto/ponto/internal/web/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Start the attendance dashboard web server.
The dashboard shows clock-in records against the checkpoint schedule,
charts irregularities per employee and exports per-employee attendance
sheets as PDF.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().String("session-secret", "", "Secret for signing session cookies (defaults to random)")
}

// resolveServeHostPort resolves port and host from flags and environment variables.
func resolveServeHostPort(cmd *cobra.Command) (int, string, string) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")
	sessionSecret := mustGetString(cmd, "session-secret")

	if sessionSecret == "" {
		sessionSecret = os.Getenv("WEB_SESSION_SECRET")
	}
	if envPort := os.Getenv("WEB_PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", &port)
	}
	if envHost := os.Getenv("WEB_HOST"); envHost != "" {
		host = envHost
	}
	return port, host, sessionSecret
}

// openSessionRepo opens the identity database for session persistence.
// Failure is not fatal: sessions fall back to memory-only.
func openSessionRepo(cfg *config.Config) middleware.SessionRepository {
	db, err := identity.Open(cfg.Identity.Path)
	if err != nil {
		fmt.Printf("Warning: session persistence disabled: %v\n", err)
		return nil
	}
	if err := db.Migrate(context.Background()); err != nil {
		fmt.Printf("Warning: session persistence disabled: %v\n", err)
		db.Close()
		return nil
	}
	fmt.Println("Session persistence enabled (SQLite)")
	return identity.NewSessionRepository(db)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dataset := store.NewDataset(store.New(cfg.Store.Path), cfg.Schedule)
	if err := dataset.Reload(); err != nil {
		return fmt.Errorf("failed to load %s: %w", cfg.Store.Path, err)
	}
	fmt.Printf("Loaded %d records from %s\n", len(dataset.Punches()), cfg.Store.Path)

	sessionRepo := openSessionRepo(cfg)
	port, host, sessionSecret := resolveServeHostPort(cmd)

	server := web.NewServer(cfg, dataset, port, host, sessionSecret, sessionRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting attendance dashboard on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
