package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/controleponto/ponto/internal/config"
	"github.com/controleponto/ponto/internal/identity"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the identity database tables",
	Long: `Create the SQLite database used by the clock-in terminal.
The database holds the registered employees and the dashboard sessions.
Running it against an existing database is harmless.`,
	RunE: runInitdb,
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}

func runInitdb(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	db, err := identity.Open(cfg.Identity.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.Identity.Path, err)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	fmt.Println("A criação das tabelas com as colunas foi feita!")
	return nil
}
