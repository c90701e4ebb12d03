package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tazomatalax/lab-calculator/internal/infra/logger"
	"github.com/tazomatalax/lab-calculator/internal/ui/tui"
	"github.com/tazomatalax/lab-calculator/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	debug  bool
	config string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "labcalc",
		Short:        "labcalc — bioprocess lab calculator (TUI + CLI)",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			lab, err := loadLab(flags.config)
			if err != nil {
				return err
			}

			cleanup := openLog(lab, flags.debug)
			defer cleanup()

			deps := tui.Deps{
				Calculator: usecase.NewCalculator(lab.cfg, usecase.WithLogger(logger.L())),
				Config:     lab.cfg,
				Logger:     logger.L(),
				LogPath:    logger.Path(),
				Debug:      flags.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .labcalc/logs/labcalc.log")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "path to labcalc.yaml (optional; searched upward if omitted)")

	for _, tab := range usecase.NewCalculator(defaultConfig()).Tabs() {
		cmd.AddCommand(tabCmd(flags, tab))
	}
	cmd.AddCommand(
		listCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// openLog never fails the command: without a writable logs dir we keep the discard logger.
func openLog(lab *labCtx, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Dir:   logger.ResolveDir(lab.root, lab.cfg.Paths.LogsDir),
		Debug: debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
