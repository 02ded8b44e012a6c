package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	debugger "github.com/gogpu/gg-debugger"
)

func newInfoCommand(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "List the commands of a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecording(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), rec, verbose)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "long", "l", false, "print every info line of each command")
	return cmd
}

// printInfo writes one line per command, indented by save depth. Hidden
// commands are dimmed.
func printInfo(w io.Writer, rec *debugger.Recording, long bool) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(fmt.Sprintf("%dx%d, %d commands", rec.Width(), rec.Height(), rec.Len())).Bold())

	depth := 0
	for i, c := range rec.Commands() {
		switch c.OpType() {
		case debugger.OpRestore, debugger.OpEndDrawPicture:
			depth = max(depth-1, 0)
		}

		name := out.String(c.OpType().String()).Foreground(opColor(out, c.OpType()))
		if !c.Visible() {
			name = name.Faint().CrossOut()
		}
		indent := fmt.Sprintf("%*s", depth*2, "")
		info := c.Info()
		switch {
		case long:
			fmt.Fprintf(w, "%4d %s%s\n", i, indent, name)
			for _, line := range info {
				fmt.Fprintf(w, "     %s  %s\n", indent, out.String(line).Faint())
			}
		case len(info) > 0:
			fmt.Fprintf(w, "%4d %s%s  %s\n", i, indent, name, out.String(info[0]).Faint())
		default:
			fmt.Fprintf(w, "%4d %s%s\n", i, indent, name)
		}

		switch c.OpType() {
		case debugger.OpSave, debugger.OpSaveLayer, debugger.OpBeginDrawPicture:
			depth++
		}
	}
}

// opColor groups commands by kind: state, clip or draw.
func opColor(out *termenv.Output, op debugger.OpType) termenv.Color {
	switch op {
	case debugger.OpSave, debugger.OpSaveLayer, debugger.OpRestore,
		debugger.OpSetMatrix, debugger.OpConcat,
		debugger.OpBeginDrawPicture, debugger.OpEndDrawPicture:
		return out.Color("4")
	case debugger.OpClipPath, debugger.OpClipRegion, debugger.OpClipRect, debugger.OpClipRRect:
		return out.Color("3")
	default:
		return out.Color("2")
	}
}
