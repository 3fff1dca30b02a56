package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	apiKey       string
	settingsPath string
	postsDir     string
	workers      int
	validate     bool
	debugMode    bool
	collection   string
)

var rootCmd = &cobra.Command{
	Use:   "devto-sync",
	Short: "Sync published dev.to articles into the site's posts collection",
	Long: `Fetches every published article of the dev.to account behind DEV_TO_API_KEY,
replaces the posts directory and writes one markdown file per article with
engagement metadata injected into its front-matter.

Without an API key the command does nothing and exits successfully.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiKey == "" {
			apiKey = os.Getenv(apiKeyEnv)
		}

		config, err := NewConfig(apiKey, overridesFromFlags(cmd))
		if err != nil {
			return err
		}

		logger := newLogger(os.Stderr, debugMode)
		result, err := NewSyncProcessor(config, logger).Run(cmd.Context())
		if result != nil && result.Status == SyncRan {
			printSummary(cmd.OutOrStdout(), result)
		}
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check local markdown files against a content collection schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := NewConfig("", overridesFromFlags(cmd))
		if err != nil {
			return err
		}

		var dir string
		switch Collection(collection) {
		case CollectionPosts:
			dir = config.Settings.PostsDirectory
		case CollectionPublicSpeaking:
			dir = config.Settings.SpeakingDirectory
		default:
			return fmt.Errorf("unknown collection %q (want %s or %s)", collection, CollectionPosts, CollectionPublicSpeaking)
		}

		results, err := ValidateCollection(Collection(collection), dir)
		if err != nil {
			return err
		}

		if invalid := printValidation(cmd.OutOrStdout(), results); invalid > 0 {
			return fmt.Errorf("%d of %d files in %s are invalid", invalid, len(results), dir)
		}
		return nil
	},
}

// overridesFromFlags collects only the flags the user actually set
func overridesFromFlags(cmd *cobra.Command) *ConfigOverrides {
	overrides := &ConfigOverrides{}
	flags := cmd.Flags()

	if flags.Changed("settings") {
		overrides.SettingsPath = &settingsPath
	}
	if flags.Changed("posts-dir") {
		overrides.PostsDirectory = &postsDir
	}
	if flags.Changed("workers") {
		overrides.Workers = &workers
	}
	if flags.Changed("validate") {
		overrides.Validate = &validate
	}

	return overrides
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings YAML (default .devto-sync/settings.yaml or built-in)")
	rootCmd.PersistentFlags().StringVar(&postsDir, "posts-dir", "", "Posts collection directory")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "dev.to API key (default $"+apiKeyEnv+")")
	rootCmd.Flags().IntVar(&workers, "workers", defaultWorkers, "Maximum concurrent file operations")
	rootCmd.Flags().BoolVar(&validate, "validate", false, "Validate merged posts against the posts schema")

	validateCmd.Flags().StringVar(&collection, "collection", string(CollectionPosts), "Collection to validate (posts or public_speaking)")
	rootCmd.AddCommand(validateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
