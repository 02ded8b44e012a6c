// Command ggdebug inspects, renders and converts draw command recordings.
//
// Usage:
//
//	ggdebug info capture.json
//	ggdebug render capture.json -o frame.png --upto 12
//	ggdebug preview capture.json 7 -o cmd7.png
//	ggdebug convert capture.json --to yaml
//
// Settings are read from ggdebug.toml in the working directory, or from
// the file named by --config. Flags override the file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	debugger "github.com/gogpu/gg-debugger"
	_ "github.com/gogpu/gg-debugger/backends/raster"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ggdebug:", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	verbose    bool
	cfg        Config
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:           "ggdebug",
		Short:         "Inspect and replay draw command recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ggdebug.toml if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log decode and render diagnostics to stderr")
	root.PersistentFlags().String("backend", "", "render backend name")
	root.PersistentFlags().Bool("binaries", false, "embed binary payloads when encoding")

	root.AddCommand(
		newInfoCommand(a),
		newRenderCommand(a),
		newPreviewCommand(a),
		newConvertCommand(a),
	)
	return root
}

// setup loads the config file, applies flag overrides and installs the
// library logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("binaries") {
		cfg.Binaries, _ = flags.GetBool("binaries")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	debugger.SetSendBinaries(cfg.Binaries)
	if a.verbose {
		debugger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return nil
}
