package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubastard/flexbox/engine/config"
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/debugserver"
	glbackend "github.com/hubastard/flexbox/engine/gfx/gl"
	"github.com/hubastard/flexbox/engine/logging"
	"github.com/hubastard/flexbox/engine/metrics"
	"github.com/hubastard/flexbox/engine/platform"
)

type options struct {
	configPath string
	logLevel   string
	debugAddr  string
	vsync      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Interactive flex container sandbox",
		Long: `Opens a window with the configured flex containers. Drag the handle in a
container's bottom-right corner to resize it and watch its children re-layout.

Keys: R rebuilds the scene, P logs a snapshot of every container, Esc quits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.Flags().Changed("vsync"))
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "scene YAML file (default: built-in demo scene)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.debugAddr, "debug-addr", "", "serve /containers and /metrics on this address, e.g. :6060")
	cmd.Flags().BoolVar(&opts.vsync, "vsync", true, "wait for vertical sync")
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScene(path string) (config.Scene, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(ctx context.Context, opts options, vsyncSet bool) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log := logging.New(level)

	scene, err := loadScene(opts.configPath)
	if err != nil {
		return err
	}
	if vsyncSet {
		scene.Window.VSync = opts.vsync
	}

	m := metrics.New()
	store := &debugserver.SnapshotStore{}
	if opts.debugAddr != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		if _, err := debugserver.Serve(ctx, opts.debugAddr, debugserver.NewHandler(store, m.Handler()), log); err != nil {
			return err
		}
	}

	app := &App{scene: scene, log: log, metrics: m, store: store}
	cfg := core.Config{
		Title:      scene.Window.Title,
		Width:      scene.Window.Width,
		Height:     scene.Window.Height,
		VSync:      scene.Window.VSync,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
	}
	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, log, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	return core.RunEngine(&core.Engine{Log: log}, app, cfg, newWindow, newRenderer)
}

func withContainer(log *slog.Logger, name string) *slog.Logger {
	return log.With("container", name)
}
