package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v0xg/stepwise/internal/ai"
	"github.com/v0xg/stepwise/internal/browser"
)

func newPlanCmd() *cobra.Command {
	var (
		provider string
		model    string
		width    int
		height   int
		profile  string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "plan <url> <goal>",
		Short: "Generate an action script from a natural language goal",
		Long: `plan opens the page, analyzes its interactive elements, and asks an AI
provider to produce an action script that accomplishes the goal. The script
is printed as JSON and can be reviewed, edited, and executed with run.

Example:
  stepwise plan "https://myapp.com" "log in as test@example.com and open settings"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, goal := args[0], args[1]

			selected := provider
			if selected == "" {
				selected = os.Getenv("STEPWISE_DEFAULT_PROVIDER")
				if selected == "" {
					selected = "claude"
				}
			}
			planner, err := ai.NewProvider(selected, model)
			if err != nil {
				return err
			}

			sess, err := browser.Open(url, browser.Options{
				Width:      width,
				Height:     height,
				Headless:   true,
				ProfileDir: profile,
			})
			if err != nil {
				return fmt.Errorf("open %s: %w", url, err)
			}
			defer sess.Close()

			snap, err := sess.Snapshot()
			if err != nil {
				return fmt.Errorf("snapshot failed: %w", err)
			}
			fmt.Fprintf(os.Stderr, "analyzed %s (%d interactive elements)\n", url, len(snap.Elements))

			entries, err := planner.GenerateScript(snap, goal)
			if err != nil {
				return fmt.Errorf("script generation failed: %w", err)
			}

			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			if output != "" {
				return os.WriteFile(output, append(data, '\n'), 0o644)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "AI provider: claude, openai (default: from env or claude)")
	cmd.Flags().StringVar(&model, "model", "", "Specific model override")
	cmd.Flags().IntVar(&width, "width", 1280, "Viewport width")
	cmd.Flags().IntVar(&height, "height", 720, "Viewport height")
	cmd.Flags().StringVar(&profile, "profile", "", "Chrome/Chromium profile directory for authenticated sessions")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the script to a file instead of stdout")

	return cmd
}
