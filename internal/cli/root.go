// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/ui"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage markdown todo lists grouped into contexts",
	Long: `todo keeps each todo list in its own markdown file. Lists live in the
folder of a context (work, personal, ...) and the active context decides
where commands look.

Run 'todo docs' for the file format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if env := strings.TrimSpace(os.Getenv(logging.EnvLogLevel)); env != "" {
				level = env
			}
		}
		if err := logging.Setup(logging.Options{Level: level, Format: logFormat}); err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		logger := logging.L()
		cmd.Flags().Visit(func(f *pflag.Flag) {
			logger.Debug("flag", "name", f.Name, "value", f.Value.String())
		})

		switch cmd.Name() {
		case "completion", "help", "version", "docs":
			return nil
		}

		if err := loadGlobalConfig(); err != nil {
			return handleError(ErrConfigInvalid, err, "Fix or remove the config file, or pass --config")
		}
		return nil
	},
}

// Execute runs the CLI. Errors already reported as JSON are not printed
// again.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $TODO_CONFIG or ~/.config/todo/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn or error (env TODO_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json or logfmt")
}

func loadGlobalConfig() error {
	resolvedConfigPath = config.ResolveConfigPath(configPath)
	logging.L().Debug("loading config", "path", resolvedConfigPath)

	loaded, err := config.LoadFrom(resolvedConfigPath)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getConfigPath returns the resolved config path.
func getConfigPath() string {
	if resolvedConfigPath == "" {
		return config.ResolveConfigPath(configPath)
	}
	return resolvedConfigPath
}
