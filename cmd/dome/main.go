package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/dome/internal/config"
	"github.com/1broseidon/dome/internal/daemon"
	"github.com/1broseidon/dome/internal/hotkeys"
	"github.com/1broseidon/dome/internal/hub"
	"github.com/1broseidon/dome/internal/ipc"
	"github.com/1broseidon/dome/internal/x11"
)

// registryResolver defers to a daemon.WindowRegistry that doesn't exist
// yet at the point the renderer needs a x11.KeyResolver.
type registryResolver struct {
	registry *daemon.WindowRegistry
}

func (r *registryResolver) KeyForWindow(id hub.WindowID) (string, bool) {
	if r.registry == nil {
		return "", false
	}
	return r.registry.KeyForWindow(id)
}

func (r *registryResolver) KeyForFloat(id hub.FloatWindowID) (string, bool) {
	if r.registry == nil {
		return "", false
	}
	return r.registry.KeyForFloat(id)
}

// printJSON writes v as pretty-printed JSON to an interactive terminal
// and as compact JSON when piped, so scripts consuming `dome status`
// don't have to skip indentation whitespace.
func printJSON(v any) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		out, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(out))
		return
	}
	out, _ := json.Marshal(v)
	fmt.Println(string(out))
}

// seedMonitors registers every RandR output Hub knows about at startup,
// ahead of the adapter's own change-polling loop.
func seedMonitors(h *hub.Hub, conn *x11.Connection, logger *slog.Logger) {
	monitors, err := conn.GetMonitors()
	if err != nil {
		logger.Warn("seed monitors", "error", err)
		return
	}
	for _, m := range monitors {
		dim := hub.Dimension{X: float64(m.X), Y: float64(m.Y), Width: float64(m.Width), Height: float64(m.Height)}
		h.AddMonitor(m.Name, dim)
	}
}

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			os.Exit(2)
		}
		runDaemon()
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "snapshot":
		os.Exit(runSnapshot(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dome <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon     Start the dome daemon (foreground)")
	fmt.Fprintln(w, "  status     Show daemon status")
	fmt.Fprintln(w, "  reload     Force the daemon to re-read its config")
	fmt.Fprintln(w, "  snapshot   Print the focused workspace's current placement set")
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printJSON(status)
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSnapshot(args []string) int {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	snap, err := client.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printJSON(snap)
	return 0
}

func runDaemon() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger.Info("configuration loaded", "log_level", cfg.LogLevel, "gap", cfg.GapSize)

	conn, err := x11.NewConnection()
	if err != nil {
		log.Fatalf("failed to connect to X11: %v", err)
	}
	defer conn.Close()

	adapter := x11.NewAdapter(conn, 0, logger)

	h := hub.NewHub(cfg.Hub)
	seedMonitors(h, conn, logger)

	// The renderer needs to resolve a WindowID back to an OS key, which
	// only the daemon's registry can do, but the daemon needs the
	// renderer's Publish func at construction. keyHolder breaks the
	// cycle: it's handed to the renderer now and pointed at the real
	// registry once the daemon exists.
	keyHolder := &registryResolver{}
	renderer := x11.NewRenderer(conn, keyHolder, logger)

	d := daemon.New(daemon.Params{
		Hub:     h,
		Config:  cfg,
		Events:  adapter.Events(),
		Publish: renderer.Publish,
		Logger:  logger,
	})
	keyHolder.registry = d.Registry()

	hotkeyHandler := hotkeys.NewHandler(adapter, d, logger)
	if err := hotkeyHandler.RegisterKeymap(cfg.Keymaps); err != nil {
		log.Fatalf("failed to register keymap: %v", err)
	}

	server, err := ipc.NewServer(d)
	if err != nil {
		log.Fatalf("failed to create IPC server: %v", err)
	}
	if err := server.Start(); err != nil {
		log.Fatalf("failed to start IPC server: %v", err)
	}
	defer server.Stop()

	reconciler := daemon.NewReconciler(daemon.ReconcilerConfig{
		CleanupOrphaned: true,
		Logger:          logger,
	}, d.Registry(), func() ([]string, error) {
		clients, err := conn.GetClientList()
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(clients))
		for _, w := range clients {
			keys = append(keys, fmt.Sprintf("x11:%d", w))
		}
		return keys, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go adapter.Run(ctx)
	go d.Run(ctx)
	go reconciler.Run(ctx)

	watcher, err := config.WatchDefault()
	if err != nil {
		logger.Warn("config watcher unavailable", "error", err)
	} else {
		defer watcher.Close()
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case newCfg := <-watcher.Changes:
					logger.Info("config changed on disk, reloading")
					if err := d.Reload(); err != nil {
						logger.Error("reload after fsnotify change", "error", err)
					}
					_ = newCfg
				case err := <-watcher.Errors:
					logger.Warn("config watcher error", "error", err)
				}
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGHUP:
				logger.Info("received SIGHUP, reloading config")
				if err := d.Reload(); err != nil {
					logger.Error("reload failed", "error", err)
				}
			default:
				logger.Info("shutting down")
				cancel()
				server.Stop()
				conn.Close()
				os.Exit(0)
			}
		}
	}()

	// Pump the X11 event queue (blocking): the key-press callbacks
	// hotkeys.Handler registered via keybind only fire while this runs.
	conn.EventLoop()
}
