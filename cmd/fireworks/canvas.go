package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/canvasui"
)

var canvasSize [2]int

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Run in an SDL window drawn through a 2D canvas",
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, log := setupLogging(cfg.Debug)
		if logFile != nil {
			defer logFile.Close()
		}

		snd := startAudio(cfg.Audio, log)
		defer snd.stop()

		return canvasui.Run(canvasui.Options{
			Width:  canvasSize[0],
			Height: canvasSize[1],
			Field:  cfg.FieldConfig(),
			Audio:  snd.audio(),
			Muter:  snd.muter(),
			Logger: log,
		})
	},
}

func init() {
	canvasCmd.Flags().IntVar(&canvasSize[0], "width", 1024, "window width")
	canvasCmd.Flags().IntVar(&canvasSize[1], "height", 768, "window height")
	rootCmd.AddCommand(canvasCmd)
}
