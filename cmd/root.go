package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/aggregator"
	"github.com/fastapply/fastapply/internal/jobs"
	"github.com/fastapply/fastapply/internal/logger"
	"github.com/fastapply/fastapply/internal/match"
	"github.com/fastapply/fastapply/internal/profile"
	"github.com/fastapply/fastapply/internal/secrets"
	"github.com/fastapply/fastapply/internal/sources"
)

const app = "fastapply"

type Config struct {
	UserAgent     string              `mapstructure:"user-agent"`
	Scorer        string              `mapstructure:"scorer"`
	Vocabulary    []string            `mapstructure:"vocabulary"`
	SourceTimeout time.Duration       `mapstructure:"source-timeout"`
	Search        *jobs.SearchRequest `mapstructure:"search"`
	Sources       *SourcesConfig      `mapstructure:"sources"`
}

type SourcesConfig struct {
	Disabled []string        `mapstructure:"disabled"`
	Findwork *FindworkConfig `mapstructure:"findwork"`
}

type FindworkConfig struct {
	TokenFile string `mapstructure:"token-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "fastapply is a cli for extracting a resume profile and matching it against remote job boards",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("findwork-token-file", "FINDWORK_TOKEN_FILE"); err != nil {
		log.Fatalf("binding FINDWORK_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is fastapply.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; built-in defaults cover everything. A
	// present but unparsable file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Search == nil {
		config.Search = &jobs.SearchRequest{}
	}
	if config.Sources == nil {
		config.Sources = &SourcesConfig{}
	}

	return &config, nil
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

func newProfileExtractor(config *Config) *profile.Extractor {
	return profile.NewExtractor(profile.Vocabulary(config.Vocabulary))
}

// newAggregator assembles the fetch client, the enabled sources and the
// configured scorer into a ready-to-use aggregator.
func newAggregator(config *Config, log *zap.Logger) (*aggregator.Aggregator, error) {
	client := sources.NewClient(log)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	findworkToken := ""
	tokenFile := viper.GetString("findwork-token-file")
	if config.Sources.Findwork != nil && config.Sources.Findwork.TokenFile != "" {
		tokenFile = config.Sources.Findwork.TokenFile
	}
	if tokenFile != "" {
		token, err := secrets.LoadFile("findwork token", tokenFile)
		if err != nil {
			return nil, err
		}
		findworkToken = token
	}

	all := []sources.Source{
		sources.NewJobicy(client),
		sources.NewWorkAnywhere(client),
		sources.NewFindwork(client, findworkToken),
		sources.NewRemoteOK(client),
		sources.NewWeWorkRemotely(client),
		sources.NewNoDesk(client),
	}

	disabled := make(map[string]bool, len(config.Sources.Disabled))
	for _, name := range config.Sources.Disabled {
		disabled[name] = true
	}

	enabled := make([]sources.Source, 0, len(all))
	for _, src := range all {
		if disabled[src.Name()] {
			log.Info("source disabled by config", zap.String("source", src.Name()))
			continue
		}
		enabled = append(enabled, src)
	}

	scorer, err := match.ByName(config.Scorer)
	if err != nil {
		return nil, err
	}

	agg := aggregator.New(enabled, scorer, log)
	agg.SourceTimeout = config.SourceTimeout

	return agg, nil
}
