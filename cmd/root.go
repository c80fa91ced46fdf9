package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/filtering"
	"github.com/Dr-Dre420/unlostai/internal/logger"
	"github.com/Dr-Dre420/unlostai/internal/view"
)

const (
	app = "unlostai"
)

type Config struct {
	CatalogFile     string                 `mapstructure:"catalog-file"`
	Recommendations *RecommendationsConfig `mapstructure:"recommendations"`
	Advisor         *AdvisorConfig         `mapstructure:"advisor"`
}

type RecommendationsConfig struct {
	MinimumScore   int      `mapstructure:"minimum-score"`
	TrendingOnly   bool     `mapstructure:"trending-only"`
	Locations      []string `mapstructure:"locations"`
	ExcludeCareers []string `mapstructure:"exclude-careers"`
}

type AdvisorConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Provider     string        `mapstructure:"provider"`
	MaxLogLength int           `mapstructure:"max-log-length"`
	Gemini       *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "unlostai maps your skills and ranks career paths for the Indian job market",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), view.Hero())
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("advisor.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is unlostai.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog-file", "", "yaml file replacing the built-in skills and careers catalog")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
}

func initConfig() {
	// .env is optional, values already present in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The config file is optional unless it was asked for explicitly.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// bootstrap builds the logger, config and catalog every subcommand needs.
// Failures are fatal.
func bootstrap() (*zap.Logger, *Config, *catalog.Catalog) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting unlostai", zap.String("version", version), zap.Any("config", config))

	c, err := loadCatalog(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err), zap.String("catalog_file", config.CatalogFile))
	}

	logger.Debug("catalog loaded",
		zap.Int("categories", c.CategoryCount()),
		zap.Int("skills", c.TotalSkills()),
		zap.Int("careers", len(c.Careers)),
	)

	return logger, config, c
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func filterConfig(config *Config) *filtering.Config {
	if config == nil || config.Recommendations == nil {
		return &filtering.Config{}
	}

	r := config.Recommendations
	return &filtering.Config{
		MinimumScore:   r.MinimumScore,
		TrendingOnly:   r.TrendingOnly,
		Locations:      r.Locations,
		ExcludeCareers: r.ExcludeCareers,
	}
}
