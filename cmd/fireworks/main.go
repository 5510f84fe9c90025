package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/terminal"
)

var (
	cfg     *config.Config
	envErr  error
	flagSet flags
)

var rootCmd = &cobra.Command{
	Use:   "fireworks",
	Short: "Fireworks particle simulation",
	Long: `Launches shells that detonate into bursts of glowing particles.
Click to launch toward the pointer; space pauses, q quits.
Runs in the terminal by default; see the gui and canvas commands for windowed frontends.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
	RunE:              runTerminal,
}

func init() {
	cfg, envErr = config.LoadEnv()
	flagSet.bind(rootCmd, cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies flags over the environment and validates the result
func resolveConfig(cmd *cobra.Command, args []string) error {
	if envErr != nil {
		return fmt.Errorf("environment: %w", envErr)
	}
	if err := flagSet.apply(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	logFile, log := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIREWORKS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	snd := startAudio(cfg.Audio, log)
	defer snd.stop()

	app := terminal.NewApp(screen, terminal.Options{
		FPS:        cfg.FPS,
		WorldScale: cfg.WorldScale,
		ColorMode:  terminal.ParseColorMode(string(cfg.ColorMode)),
		Field:      cfg.FieldConfig(),
		Audio:      snd.audio(),
		Muter:      snd.muter(),
		Logger:     log,
		HideHUD:    flagSet.hideHUD,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("terminal started", "fps", cfg.FPS, "scale", cfg.WorldScale, "color", cfg.ColorMode)
	err = app.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	stats := app.Field().Stats()
	log.Info("terminal stopped", "ticks", stats.Ticks, "launched", stats.Launched, "detonated", stats.Detonated)
	return nil
}
