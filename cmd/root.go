package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ponto",
	Short: "Employee time and attendance tracking",
	Long: `Ponto tracks employee clock-ins against a checkpoint schedule.
It serves the management dashboard, runs the face-recognition clock-in
terminal and maintains the shared attendance spreadsheet.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
