package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contentforge/internal/account"
	"contentforge/internal/config"
	"contentforge/internal/core"
	"contentforge/internal/llm"
	"contentforge/internal/logger"
	"contentforge/internal/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "contentforge",
	Short: "ContentForge is a guided generator for SEO-optimized content.",
	Long: `ContentForge walks you through creating blog posts, landing pages,
service pages, social posts, email sequences, and more. Each flow
gathers the inputs the content type needs, generates titles, keywords,
and an outline, and produces a full SEO-scored draft.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.contentforge.yaml)")
}

func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
}

// newGateway builds the generation gateway for the configured provider.
func newGateway(ctx context.Context) (*llm.Gateway, error) {
	cfg := config.Get()

	var provider llm.TextGenerator
	var name string
	switch cfg.LLM.Provider {
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model)
		if err != nil {
			return nil, err
		}
		provider = client
		name = "gemini"
	case "deepseek", "":
		if cfg.LLM.DeepSeek.APIKey == "" {
			return nil, fmt.Errorf("DeepSeek API key is required. Set DEEPSEEK_API_KEY or llm.deepseek.api_key in config")
		}
		provider = llm.NewDeepSeekClient(
			cfg.LLM.DeepSeek.APIKey,
			llm.WithBaseURL(cfg.LLM.DeepSeek.BaseURL),
			llm.WithModel(cfg.LLM.DeepSeek.Model),
		)
		name = "deepseek"
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}

	return llm.NewGateway(provider, name, cfg.Generation.MinWords, cfg.Generation.MaxRetries), nil
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Launch the guided authoring wizard",
	Long: `Launch the interactive wizard for a content type.

Example:
  contentforge create --type "Blog Post"
  contentforge create --type "Social Media Post"`,
	Run: func(cmd *cobra.Command, args []string) {
		typeName, _ := cmd.Flags().GetString("type")

		contentType, err := resolveContentType(typeName)
		if err != nil {
			logger.Error("Unknown content type", err)
			os.Exit(1)
		}

		gateway, err := newGateway(cmd.Context())
		if err != nil {
			logger.Error("Failed to set up model provider", err)
			os.Exit(1)
		}

		plan, _ := cmd.Flags().GetString("plan")
		s, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", err)
			os.Exit(1)
		}
		defer s.Close()

		user := account.User{ID: defaultUserID, Plan: account.PlanID(plan)}
		tui.StartWizard(contentType, gateway, s, user)
	},
}

func resolveContentType(name string) (core.ContentType, error) {
	for _, t := range core.ContentTypes {
		if string(t) == name {
			return t, nil
		}
	}
	names := make([]string, len(core.ContentTypes))
	for i, t := range core.ContentTypes {
		names[i] = string(t)
	}
	return "", fmt.Errorf("no content type named %q; choose one of: %v", name, names)
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().String("type", string(core.BlogPost), "content type to create")
	createCmd.Flags().String("plan", string(account.PlanFree), "plan id for usage limits (free, pro, business)")
}
