package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sadhikari20/AIJobInsight/internal/catalog"
	"github.com/sadhikari20/AIJobInsight/internal/client"
	"github.com/sadhikari20/AIJobInsight/internal/config"
	"github.com/sadhikari20/AIJobInsight/internal/observability"
	"github.com/sadhikari20/AIJobInsight/internal/present"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Fetch insights for a job title and career level",
	Long:  "Fetch skill distribution and hiring insights for the given job title and career level, from either the REST insight service or the Gemini backend.",
	RunE:  runInsights,
}

var (
	insightsJobTitle    string
	insightsCareerLevel string
	insightsBackend     string
	insightsBaseURL     string
	insightsAPIKey      string
	insightsConfigPath  string
	insightsVerbose     bool
)

func init() {
	insightsCmd.Flags().StringVar(&insightsJobTitle, "job-title", "", "Job title to look up (defaults to the first catalog entry)")
	insightsCmd.Flags().StringVar(&insightsCareerLevel, "career-level", "", "Career level to look up (defaults to the first catalog entry)")
	insightsCmd.Flags().StringVar(&insightsBackend, "backend", "", "Insight backend: rest or gemini (default rest)")
	insightsCmd.Flags().StringVar(&insightsBaseURL, "base-url", "", "Base URL of the REST insight service")
	insightsCmd.Flags().StringVar(&insightsAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	insightsCmd.Flags().StringVarP(&insightsConfigPath, "config", "c", "", "Path to JSON config file")
	insightsCmd.Flags().BoolVarP(&insightsVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(insightsCmd)
}

// insightsDefaults are the built-in fallbacks applied after flags and config.
var insightsDefaults = config.Config{
	JobTitle:    catalog.DefaultJobTitle(),
	CareerLevel: catalog.DefaultCareerLevel(),
	Backend:     config.BackendREST,
	BaseURL:     "http://localhost:8000",
}

// resolveInsightsConfig layers flags over the config file over built-in defaults.
func resolveInsightsConfig() (config.Config, error) {
	flags := config.Config{
		JobTitle:    insightsJobTitle,
		CareerLevel: insightsCareerLevel,
		Backend:     insightsBackend,
		BaseURL:     insightsBaseURL,
		APIKey:      insightsAPIKey,
		Verbose:     insightsVerbose,
	}

	if insightsConfigPath != "" {
		fileCfg, err := config.LoadConfig(insightsConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	cfg := flags.MergeWithDefaults(insightsDefaults)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSource builds the insight source for the configured backend.
func newSource(ctx context.Context, cfg config.Config) (client.Source, func() error, error) {
	switch cfg.Backend {
	case config.BackendREST:
		return client.NewRESTSource(cfg.BaseURL), func() error { return nil }, nil
	case config.BackendGemini:
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}
		source, err := client.NewGeminiSourceFromKey(ctx, apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini source: %w", err)
		}
		return source, source.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func runInsights(_ *cobra.Command, _ []string) error {
	cfg, err := resolveInsightsConfig()
	if err != nil {
		return err
	}

	request := types.InsightRequest{
		JobTitle:    cfg.JobTitle,
		CareerLevel: cfg.CareerLevel,
	}
	if err := request.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRequest(request, cfg.Backend)
	}

	model := present.NewModel()
	defer model.Close()

	token, err := model.Begin()
	if err != nil {
		return err
	}

	stop := startSpinner(fmt.Sprintf("Fetching insights for %s (%s)", request.JobTitle, request.CareerLevel))
	result, fetchErr := source.FetchInsights(ctx, request)
	stop()

	if fetchErr != nil {
		model.Fail(token, fetchErr.Error())
	} else {
		model.Succeed(token, result)
	}

	renderer := present.NewRenderer(os.Stdout)
	switch model.State() {
	case present.StateSuccess:
		if cfg.Verbose {
			observability.NewPrinter(os.Stderr).PrintResult(model.Result())
		}
		renderer.Render(model.Result(), model.Chart())
		return nil
	case present.StateFailure:
		renderer.RenderError(model.Err())
		return fmt.Errorf("failed to fetch insights")
	default:
		return fmt.Errorf("request did not settle")
	}
}

// startSpinner shows a progress spinner while the fetch is in flight. It is a
// no-op when stdout is not a terminal.
func startSpinner(message string) func() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
