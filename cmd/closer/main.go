package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-edge-platform/pkgcloser/internal/config"
	"github.com/open-edge-platform/pkgcloser/internal/utils/logger"
	"github.com/open-edge-platform/pkgcloser/internal/utils/security"
)

// Command-line flags that can override config file settings.
var (
	configFile       string
	logLevel         string
	actualConfigFile string
	loggerCleanup    func()
)

func main() {
	cobra.OnInitialize(initConfig)

	defer func() {
		if loggerCleanup != nil {
			loggerCleanup()
		}
	}()

	rootCmd := createRootCommand()
	security.AttachRecursive(rootCmd, security.DefaultLimits())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads the config file and sets up logging before any
// subcommand runs.
func initConfig() {
	configFilePath := configFile
	if configFilePath == "" {
		configFilePath = config.FindConfigFile()
	}
	actualConfigFile = configFilePath

	cfg, err := config.Load(configFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}

	_, cleanup, logErr := logger.InitWithConfig(logger.Config{
		Level:    level,
		FilePath: cfg.Logging.File,
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", logErr)
		os.Exit(1)
	}
	loggerCleanup = cleanup
}

// createRootCommand creates and configures the root cobra command. Running
// it directly with a catalog path and one or more package names performs a
// dependency closure; subcommands cover version info and fixture import.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "closer <catalog> <pkg> [<pkg>...]",
		Short: "Resolve the transitive dependency closure of RPM-style packages",
		Long: `closer computes the transitive dependency closure of one or more
requested package or capability names against a relational package catalog.

It walks Provides/Requires/Obsoletes facts starting from the requested names
until no new names are discovered, then prints the closure as three
independently sorted buckets: obsoletes, provides, requires.

closer does not install, fetch, build, or choose among multiple providers of
the same capability — it only reports what the catalog says is reachable.`,
		Args: cobra.MinimumNArgs(2),
		RunE: executeClose,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if actualConfigFile != "" {
				logger.Logger().Infof("using configuration from: %s", actualConfigFile)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&outputFormat, "format", "text",
		"Output format: text or json")

	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createImportCommand())

	return rootCmd
}
