package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/veteran-resume-builder/internal/config"
	"github.com/jonathan/veteran-resume-builder/internal/generation"
	"github.com/jonathan/veteran-resume-builder/internal/llm"
	"github.com/jonathan/veteran-resume-builder/internal/mos"
	"github.com/jonathan/veteran-resume-builder/internal/pipeline"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build a resume document from a profile file",
	Long: `Runs the full build: validates the profile, translates occupational codes
into civilian terms, generates summary and bullet content, and renders the
document with the chosen template.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath  string
	buildProfile     string
	buildOutDir      string
	buildOutput      string
	buildTemplate    string
	buildTemplateDir string
	buildMOSTable    string
	buildAI          string
	buildModel       string
	buildAPIKey      string
	buildExport      bool
	buildVerbose     bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildProfile, "profile", "p", "", "Path to the profile JSON file")
	buildCommand.Flags().StringVarP(&buildOutDir, "outdir", "o", "", "Directory for rendered documents (default \"output\")")
	buildCommand.Flags().StringVar(&buildOutput, "output", "", "Output file name (default derives from the candidate name)")
	buildCommand.Flags().StringVarP(&buildTemplate, "template", "t", "", "Template name or .docx template file (default \"classic\")")
	buildCommand.Flags().StringVar(&buildTemplateDir, "template-dir", "", "Directory of user templates, overrides built-ins")
	buildCommand.Flags().StringVar(&buildMOSTable, "mos-table", "", "Path to a custom occupational code CSV (default uses the built-in table)")
	buildCommand.Flags().StringVar(&buildAI, "ai", "", "Content backend: deterministic or gemini (default \"deterministic\")")
	buildCommand.Flags().StringVar(&buildModel, "model", "", "Model name for the gemini backend")
	buildCommand.Flags().BoolVar(&buildExport, "export", false, "Also write a JSON export of the run next to the document")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	buildCommand.Flags().StringVar(&buildAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveBuildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}

	table, err := loadTable(cfg.MOSTable)
	if err != nil {
		return err
	}

	generator, closer, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	opts := pipeline.RunOptions{
		ProfilePath: cfg.Profile,
		OutDir:      cfg.OutDir,
		Output:      cfg.Output,
		Template:    cfg.Template,
		TemplateDir: cfg.TemplateDir,
		Export:      cfg.Export,
		Verbose:     cfg.Verbose,
		Table:       table,
		Generator:   generator,
	}

	result, err := pipeline.RunPipeline(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Done! Resume written to %s\n", result.OutputPath)
	if result.ExportPath != "" {
		fmt.Printf("Export written to %s\n", result.ExportPath)
	}
	return nil
}

// resolveBuildConfig loads the optional config file, applies explicit flag
// overrides, then fills remaining gaps with defaults.
func resolveBuildConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("profile") {
		cfg.Profile = buildProfile
	}
	if cmd.Flags().Changed("outdir") {
		cfg.OutDir = buildOutDir
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = buildOutput
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplate
	}
	if cmd.Flags().Changed("template-dir") {
		cfg.TemplateDir = buildTemplateDir
	}
	if cmd.Flags().Changed("mos-table") {
		cfg.MOSTable = buildMOSTable
	}
	if cmd.Flags().Changed("ai") {
		cfg.AI = buildAI
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = buildModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = buildAPIKey
	}
	if cmd.Flags().Changed("export") {
		cfg.Export = buildExport
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Template: "classic",
		Model:    llm.DefaultModel,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadTable loads the occupational code table, preferring a user-supplied
// CSV over the built-in one.
func loadTable(path string) (*mos.Table, error) {
	if path != "" {
		return mos.LoadFile(path)
	}
	return mos.DefaultTable()
}

// buildGenerator constructs the content backend named by the config. The
// gemini backend requires an API key and is wrapped so unavailability falls
// back to deterministic output instead of failing the build. The returned
// closer releases the remote client, when there is one.
func buildGenerator(ctx context.Context, cfg config.Config) (generation.Generator, func() error, error) {
	switch cfg.AI {
	case config.BackendDeterministic:
		return generation.NewDeterministic(), nil, nil

	case config.BackendGemini:
		apiKey := cfg.ResolveAPIKey()
		if apiKey == "" {
			return nil, nil, fmt.Errorf("the gemini backend requires an API key: set %s, --api-key, or api_key in the config file", config.EnvAPIKey)
		}

		remote, err := generation.NewRemote(ctx, apiKey, cfg.Model, generation.DefaultTimeout)
		if err != nil {
			return nil, nil, err
		}

		fallback := generation.WithFallback(remote, generation.NewDeterministic())
		fallback.OnFallback = func(operation string, err error) {
			fmt.Printf("Warning: gemini backend unavailable for %s, using deterministic content: %v\n", operation, err)
		}
		return fallback, remote.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown content backend %q", cfg.AI)
	}
}
