package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/browser"
	"github.com/v0xg/stepwise/internal/driver"
	"github.com/v0xg/stepwise/internal/engine"
)

func newRunCmd() *cobra.Command {
	var (
		url      string
		width    int
		height   int
		headed   bool
		profile  string
		logLevel string
		noJitter bool
		seed     int64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute an action script against a page",
		Long: `run loads a JSON or YAML action script, opens the target page, executes
every step, and prints the execution report as JSON.

Example:
  stepwise run login.json --url https://myapp.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := action.LoadScript(args[0])
			if err != nil {
				return err
			}

			sess, err := browser.Open(url, browser.Options{
				Width:      width,
				Height:     height,
				Headless:   !headed,
				ProfileDir: profile,
			})
			if err != nil {
				return fmt.Errorf("open %s: %w", url, err)
			}
			defer sess.Close()

			var pacer engine.Pacer = engine.NewPacer(seed)
			if noJitter {
				pacer = engine.NoPace()
			}
			eng := engine.New(driver.NewRod(sess.Page()), engine.Options{
				Pacer:  pacer,
				Logger: newLogger(logLevel),
			})

			report := eng.Run(entries)

			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
					return err
				}
			} else {
				fmt.Println(string(data))
			}
			fmt.Fprintln(os.Stderr, report.Summary())

			if report.Failed > 0 {
				return fmt.Errorf("%d action(s) failed", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Page to open before executing (required)")
	cmd.Flags().IntVar(&width, "width", 1280, "Viewport width")
	cmd.Flags().IntVar(&height, "height", 720, "Viewport height")
	cmd.Flags().BoolVar(&headed, "headed", false, "Run with a visible browser window")
	cmd.Flags().StringVar(&profile, "profile", "", "Chrome/Chromium profile directory for authenticated sessions")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&noJitter, "no-jitter", false, "Disable humanization delays and click offsets")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Jitter random seed (0 seeds from the clock)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

// newLogger builds the JSON stderr logger. Stdout stays reserved for the
// report so callers can pipe it.
func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
