package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the config",
	Long: `Print the built-in default config as YAML. Save it to
~/.arkanoid/configs/arkanoid.yaml or ./configs/arkanoid.yaml to customize.

With --resolved, print the config that would actually be used, after the
search order, --config, --difficulty and --seed are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows what each difficulty preset changes on top of the loaded config.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the default")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runPresets(cmd *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tTICK\tPADDLE\tLIVES\tMAX STEP")
	for _, p := range config.Presets() {
		cfg := base
		config.ApplyPreset(&cfg, p)
		lives := 0
		if cfg.Gameplay.Damage > 0 {
			lives = (cfg.Gameplay.MaxHealth + cfg.Gameplay.Damage - 1) / cfg.Gameplay.Damage
		}
		fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%d\n",
			p, cfg.Runtime.TickPeriod.Round(time.Millisecond), cfg.Paddle.Width, lives, cfg.Ball.DeviationMax)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'arkanoid play --difficulty <name>' to play a preset.")
	return nil
}
