package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present; missing files are fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "stepwise",
		Short: "Declarative browser automation",
		Long: `stepwise executes declarative action scripts (click, type, wait,
press_enter, execute_script) against a real browser, with conditional steps,
grouped failure handling, and humanized pacing. It can also generate a
script from a natural language goal using an AI provider.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPlanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
