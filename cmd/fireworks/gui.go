package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/gui"
)

var guiSize [2]int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Run in an ebiten window",
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, log := setupLogging(cfg.Debug)
		if logFile != nil {
			defer logFile.Close()
		}

		snd := startAudio(cfg.Audio, log)
		defer snd.stop()

		return gui.Run(gui.Options{
			Width:  guiSize[0],
			Height: guiSize[1],
			FPS:    cfg.FPS,
			Field:  cfg.FieldConfig(),
			Audio:  snd.audio(),
			Muter:  snd.muter(),
			Logger: log,
		})
	},
}

func init() {
	guiCmd.Flags().IntVar(&guiSize[0], "width", 1024, "window width")
	guiCmd.Flags().IntVar(&guiSize[1], "height", 768, "window height")
	rootCmd.AddCommand(guiCmd)
}
