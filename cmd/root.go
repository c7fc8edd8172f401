// Package cmd implements the command-line interface for coachtree.
// It provides the root command and subcommands for building and
// maintaining the coaching connections dataset.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdcrawl "github.com/jonesrussell/coachtree/cmd/crawl"
	cmdpatch "github.com/jonesrussell/coachtree/cmd/patch"
	cmdvalidate "github.com/jonesrussell/coachtree/cmd/validate"
)

// version is the reported application version.
const version = "1.0.0"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "coachtree",
		Short: "Build a dataset of NFL coaching tree relationships",
		Long: `coachtree crawls Wikipedia through the MediaWiki API, extracts
mentor/protege and career-overlap relationships among NFL coaches from
article markup, and maintains a JSON dataset for the visualization
front end.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to viper.
	_ = godotenv.Load()

	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("coachtree version %s\n", version)
		},
	})

	rootCmd.AddCommand(cmdcrawl.Command())
	rootCmd.AddCommand(cmdpatch.Command())
	rootCmd.AddCommand(cmdvalidate.Command())
}

// initConfig reads the config file and environment variables into viper.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// The config file is optional; defaults and environment variables
	// cover a plain run.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults)\n", err)
	}

	if err := bindFlagsAndEnv(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindFlagsAndEnv binds command-line flags and well-known environment
// variables to config keys.
func bindFlagsAndEnv() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	envBindings := map[string][]string{
		"app.environment":      {"APP_ENV"},
		"app.debug":            {"APP_DEBUG"},
		"logger.level":         {"LOG_LEVEL"},
		"logger.encoding":      {"LOG_FORMAT"},
		"crawler.api_base_url": {"COACHTREE_API_URL"},
		"crawler.user_agent":   {"COACHTREE_USER_AGENT"},
		"dataset.path":         {"COACHTREE_DATASET_PATH"},
	}
	for key, envs := range envBindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

// setupDevelopmentLogging adjusts logger settings for development runs
// and the --debug flag.
func setupDevelopmentLogging() {
	debugFlag := debug || viper.GetBool("app.debug")
	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if viper.GetString("app.environment") == "development" {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	debug = debugFlag
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "coachtree",
		"version":     version,
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "console",
		"output_paths": []string{"stdout"},
	})

	viper.SetDefault("crawler", map[string]any{
		"api_base_url":    "https://en.wikipedia.org/w/api.php",
		"user_agent":      "CoachTreeBot/1.0 (Educational project; github.com/jonesrussell/coachtree)",
		"delay":           "1s",
		"request_timeout": "30s",
		"max_pages":       300,
		"max_depth":       5,
		"present_year":    time.Now().Year(),
		"seeds_page":      "List of current National Football League head coaches",
	})

	viper.SetDefault("dataset", map[string]any{
		"path": "data/coaching_connections.json",
	})
}
