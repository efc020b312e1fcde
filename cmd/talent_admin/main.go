// Package main provides the entry point for the talent admin console CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-console/internal/config"
	"github.com/jonathan/talent-console/internal/observability"
	"github.com/jonathan/talent-console/internal/refdata"
	"github.com/jonathan/talent-console/internal/remote"
)

var rootCmd = &cobra.Command{
	Use:   "talent_admin",
	Short: "Talent Console Admin CLI",
	Long:  "Talent Console administers staffing resources, skill and category reference lists, and vendor skill approvals against the admin backend.",
}

var (
	flagConfig           string
	flagBaseURL          string
	flagAPIToken         string
	flagTimeout          int
	flagPageSize         int
	flagVerbose          bool
	flagValidatePayloads bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Path to JSON config file")
	pf.StringVar(&flagBaseURL, "base-url", "", "Admin backend base URL (or TALENT_BASE_URL)")
	pf.StringVar(&flagAPIToken, "api-token", "", "Bearer token (or TALENT_API_TOKEN)")
	pf.IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds")
	pf.IntVar(&flagPageSize, "page-size", 0, "Default page size for list commands")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
	pf.BoolVar(&flagValidatePayloads, "validate-payloads", false, "Schema-check backend responses")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves the effective configuration: defaults, then config
// file, then environment, then explicit flags.
func loadSettings() (config.Config, error) {
	cfg := config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIToken != "" {
		cfg.APIToken = flagAPIToken
	}
	if flagTimeout > 0 {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flagPageSize > 0 {
		cfg.PageSize = flagPageSize
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagValidatePayloads {
		cfg.ValidatePayloads = true
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.BaseURL == "" {
		return config.Config{}, fmt.Errorf("base URL is required (set TALENT_BASE_URL, use --base-url, or add base_url to the config file)")
	}

	return cfg, nil
}

// newClient builds the backend client from resolved settings.
func newClient(cfg config.Config) (*remote.Client, error) {
	return remote.NewClient(cfg.BaseURL, &remote.Options{
		Timeout:          cfg.Timeout(),
		APIToken:         cfg.APIToken,
		ValidatePayloads: cfg.ValidatePayloads,
	})
}

// loadReferenceData fetches both reference lists up front so that edit
// sessions and submissions are unblocked before any form work starts.
func loadReferenceData(ctx context.Context, client *remote.Client, cfg config.Config) (*refdata.Loader, error) {
	loader := refdata.NewLoader(client)
	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "Loading skill and category reference lists...")
	}
	if err := loader.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return loader, nil
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}
