package main

import (
	"fmt"
	"os"

	"github.com/NickyBoy89/javagrader/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "javagrader",
		Short: "Grades the multilevel inheritance exercise (Animal, Mammal, Dog)",

		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	configPath string
	logLevel   string
	verbose    bool

	cfg = config.Default()
)

// errChecksFailed is returned when every file was graded, but at least one failed
var errChecksFailed = errors.New("one or more files failed the checks")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errChecksFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "javagrader.yaml", "Path to the config file, a missing file uses the defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Additional debug info")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(graphCmd)
}

// setup loads the config and applies it to the logger. Flags take priority over
// the config file
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = log.DebugLevel.String()
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	return nil
}
