package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	debugger "github.com/gogpu/gg-debugger"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		output string
		upto   int
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Replay a recording into an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecording(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			b, err := debugger.NewBackend(a.cfg.Backend)
			if err != nil {
				return err
			}
			w, h := rec.Width(), rec.Height()
			if w <= 0 || h <= 0 {
				w, h = a.cfg.Width, a.cfg.Height
			}
			if err := b.Begin(w, h); err != nil {
				return err
			}
			if cmd.Flags().Changed("upto") {
				rec.PlaybackTo(b, upto)
			} else {
				rec.Playback(b)
			}
			if err := b.End(); err != nil {
				return err
			}
			return writeFrame(cmd, b, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "frame.png", "output file, - for stdout")
	cmd.Flags().IntVar(&upto, "upto", 0, "replay commands 0..N only")
	return cmd
}

func newPreviewCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "preview FILE INDEX",
		Short: "Render the thumbnail of a single command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecording(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[1])
			if err != nil || i < 0 || i >= rec.Len() {
				return fmt.Errorf("index %q out of range [0, %d)", args[1], rec.Len())
			}
			b, err := debugger.NewBackend(a.cfg.Backend)
			if err != nil {
				return err
			}
			if err := b.Begin(a.cfg.PreviewSize, a.cfg.PreviewSize); err != nil {
				return err
			}
			ok := debugger.RenderPreview(rec.At(i), b)
			if err := b.End(); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("command %d (%v) has no preview", i, rec.At(i).OpType())
			}
			return writeFrame(cmd, b, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output file, - for stdout")
	return cmd
}

// writeFrame writes the backend output. Backends without their own writer
// are encoded as PNG from their image.
func writeFrame(cmd *cobra.Command, b debugger.Backend, path string) error {
	w, closeFn, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	err = encodeFrame(w, b)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

func encodeFrame(w io.Writer, b debugger.Backend) error {
	switch out := b.(type) {
	case debugger.WriterBackend:
		_, err := out.WriteTo(w)
		return err
	case debugger.ImageBackend:
		return png.Encode(w, out.Image())
	default:
		return errors.New("backend produces no output")
	}
}
