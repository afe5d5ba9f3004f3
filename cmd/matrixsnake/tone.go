package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-snake/internal/tone"
)

var (
	flagToneFreq     float64
	flagToneDuration float64
	flagToneVolume   float64
	flagToneRate     int
	flagToneOut      string
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Write a sine tone WAV file",
	Long: `Synthesize a sine tone as 16-bit mono PCM and write it as a WAV file.
The header of the written file is printed.

Examples:
  matrixsnake tone -o beep.wav
  matrixsnake tone --freq 110 --duration 0.25 --volume 0.7 -o die.wav
  matrixsnake tone --freq 880 --rate 22050 -o eat.wav`,
	Args: cobra.NoArgs,
	RunE: runTone,
}

func init() {
	toneCmd.Flags().Float64Var(&flagToneFreq, "freq", 440, "Frequency in Hz")
	toneCmd.Flags().Float64Var(&flagToneDuration, "duration", 0.1, "Duration in seconds")
	toneCmd.Flags().Float64Var(&flagToneVolume, "volume", 0.5, "Volume in [0, 1]")
	toneCmd.Flags().IntVar(&flagToneRate, "rate", tone.DefaultSampleRate, "Sample rate in Hz")
	toneCmd.Flags().StringVarP(&flagToneOut, "output", "o", "tone.wav", "Output WAV path")
}

func runTone(cmd *cobra.Command, _ []string) error {
	buf, err := tone.Generate(flagToneFreq, flagToneDuration, flagToneVolume, flagToneRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flagToneOut, buf, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagToneOut, err)
	}

	h, err := buf.Header()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%d bytes)\n", flagToneOut, len(buf))
	fmt.Fprintf(out, "  Format:      PCM %d-bit, %d channel\n", h.BitsPerSample, h.Channels)
	fmt.Fprintf(out, "  Sample rate: %d Hz\n", h.SampleRate)
	fmt.Fprintf(out, "  Byte rate:   %d\n", h.ByteRate)
	fmt.Fprintf(out, "  Frames:      %d\n", h.Frames())
	fmt.Fprintf(out, "  Duration:    %v\n", h.Duration())
	return nil
}
