// Command cubeview shows a shaded cube with orbit controls.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"cubeview/internal/buildinfo"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "cubeview",
		Short:         "Render a shaded cube with orbit controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, configFile)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML config file")
	f.Bool("headless", false, "Run without a window")
	f.Uint64("frames", 0, "Stop after N frames in headless mode (0 = run until interrupted)")
	f.String("snapshot", "", "Write the last headless frame to this PNG file")
	f.Int("width", 800, "Viewport width")
	f.Int("height", 600, "Viewport height")
	f.String("material", "shader", "Cube material: shader, standard or wireframe")
	f.String("vertex", "", "Vertex shader URL")
	f.String("fragment", "", "Fragment shader URL")
	f.Bool("watch", false, "Reload local shader files when they change")
	f.Bool("hud", false, "Draw the status overlay")
	f.String("log-level", "info", "Log level")

	bind := map[string]string{
		"headless.enabled":      "headless",
		"headless.frames":       "frames",
		"headless.snapshot":     "snapshot",
		"window.width":          "width",
		"window.height":         "height",
		"material.mode":         "material",
		"material.vertex_url":   "vertex",
		"material.fragment_url": "fragment",
		"material.watch":        "watch",
		"hud":                   "hud",
		"log.level":             "log-level",
	}
	for key, name := range bind {
		// Only an explicitly set flag overrides the file and env layers.
		_ = v.BindPFlag(key, f.Lookup(name))
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
