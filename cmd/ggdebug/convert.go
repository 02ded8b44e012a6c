package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCommand(a *app) *cobra.Command {
	var (
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a recording as JSON or YAML",
		Long: "Convert decodes a recording and encodes it again. Commands that fail\n" +
			"to decode are dropped, so the output is also a validated copy.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecording(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Format
			}
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q, want json or yaml", format)
			}
			w, closeFn, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			err = writeRecording(w, rec, format, a.cfg.Binaries)
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&format, "to", "", "output format: json or yaml")
	return cmd
}
