package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wordscramble",
	Short: "Spell as many words as you can from a root word",
	Long: `wordscramble picks a root word and accepts words spelled from its
letters, each letter used at most as often as it appears in the root.
Words must be new to the game and found in the dictionary.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("wordscramble version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides "+config.EnvConfigFile+")")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return nil
}

// useConsoleLog switches the global logger to human-readable stderr output.
func useConsoleLog() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
