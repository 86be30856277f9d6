package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"spinwheel/internal/app"
	"spinwheel/internal/config"
	"spinwheel/internal/render"
	"spinwheel/internal/wheel"
)

var (
	flagLabels     string
	flagWeights    string
	flagResistance float64
	flagSpeedMax   float64
	flagPointer    float64

	flagGifOut      string
	flagGifTarget   int
	flagGifSize     int
	flagGifFPS      int
	flagGifDuration float64
	flagGifLinger   float64
	flagGifRevs     int
	flagGifEasing   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinwheel",
		Short: "Spin Wheel - Interactive prize wheel in the terminal",
		Long: `Spin Wheel renders a weighted prize wheel as circular ASCII art with a
Matrix-inspired aesthetic. Spin it with the keyboard, flick it with the
mouse, or animate it to a chosen item.

Keys: Space spins at a random speed, T animates to a random item,
1-9 animate to that item, S stops, +/- adjust resistance, Q quits.`,
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&flagLabels, "labels", "Alpha,Bravo,Charlie,Delta,Echo,Foxtrot", "Comma-separated item labels")
	rootCmd.PersistentFlags().StringVar(&flagWeights, "weights", "", "Comma-separated item weights (defaults to equal)")
	rootCmd.PersistentFlags().Float64Var(&flagResistance, "resistance", config.DefaultResistance, "Rotation resistance in deg/s^2 (negative decelerates)")
	rootCmd.PersistentFlags().Float64Var(&flagSpeedMax, "speed-max", config.DefaultSpeedMax, "Maximum spin speed in deg/s")
	rootCmd.PersistentFlags().Float64Var(&flagPointer, "pointer", config.DefaultPointerAngle, "Pointer angle in degrees (0 = top, clockwise)")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "Render a spin animation to an animated GIF",
		RunE:  runGIF,
	}
	gifCmd.Flags().StringVar(&flagGifOut, "out", "wheel.gif", "Output file path")
	gifCmd.Flags().IntVar(&flagGifTarget, "target", 0, "Item index to land on (0-based)")
	gifCmd.Flags().IntVar(&flagGifSize, "size", 480, "Canvas edge in pixels")
	gifCmd.Flags().IntVar(&flagGifFPS, "fps", 25, "Frames per second")
	gifCmd.Flags().Float64Var(&flagGifDuration, "duration", 4.0, "Spin duration in seconds")
	gifCmd.Flags().Float64Var(&flagGifLinger, "linger", 1.5, "Hold on the final frame, in seconds")
	gifCmd.Flags().IntVar(&flagGifRevs, "revolutions", 3, "Extra full turns before landing")
	gifCmd.Flags().StringVar(&flagGifEasing, "easing", "cubic-out", "Easing curve: linear, sine-out, cubic-out, quad-in-out")
	rootCmd.AddCommand(gifCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	items, err := parseItems(flagLabels, flagWeights)
	if err != nil {
		return err
	}

	cfg := wheel.DefaultConfig()
	cfg.RotationResistance = flagResistance
	cfg.RotationSpeedMax = flagSpeedMax
	cfg.PointerAngle = flagPointer

	model, err := app.New(items, cfg)
	if err != nil {
		return err
	}

	zone.NewGlobal()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	return err
}

func runGIF(cmd *cobra.Command, args []string) error {
	items, err := parseItems(flagLabels, flagWeights)
	if err != nil {
		return err
	}

	cfg := wheel.DefaultConfig()
	cfg.RotationResistance = flagResistance
	cfg.RotationSpeedMax = flagSpeedMax
	cfg.PointerAngle = flagPointer

	easing, err := wheel.EasingByName(flagGifEasing)
	if err != nil {
		return err
	}

	f, err := os.Create(flagGifOut)
	if err != nil {
		return err
	}
	defer f.Close()

	err = render.WriteGIF(f, items, cfg, render.GIFOptions{
		Size:        flagGifSize,
		FPS:         flagGifFPS,
		Duration:    secondsToDuration(flagGifDuration),
		Linger:      secondsToDuration(flagGifLinger),
		Revolutions: flagGifRevs,
		Target:      flagGifTarget,
		Easing:      easing,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagGifOut)
	return nil
}

// parseItems builds the wheel items from the label and weight flags.
// Weights default to 1; a weight list shorter than the label list pads
// with 1s, a longer one is an error.
func parseItems(labels, weights string) ([]wheel.Item, error) {
	labelList := strings.Split(labels, ",")
	if len(labelList) == 0 || (len(labelList) == 1 && strings.TrimSpace(labelList[0]) == "") {
		return nil, fmt.Errorf("at least one label is required")
	}

	items := make([]wheel.Item, 0, len(labelList))
	for _, l := range labelList {
		items = append(items, wheel.Item{Label: strings.TrimSpace(l), Weight: 1})
	}

	if weights == "" {
		return items, nil
	}

	weightList := strings.Split(weights, ",")
	if len(weightList) > len(items) {
		return nil, fmt.Errorf("more weights (%d) than labels (%d)", len(weightList), len(items))
	}
	for i, ws := range weightList {
		w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", ws, err)
		}
		items[i].Weight = w
	}
	return items, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
