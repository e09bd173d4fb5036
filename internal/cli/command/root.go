// Package command provides CLI command definitions for kappa-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"fmt"
	"os"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kappa-go/internal/cli/config"
	"github.com/yndnr/kappa-go/internal/cli/connection"
	"github.com/yndnr/kappa-go/internal/cli/output"
	"github.com/yndnr/kappa-go/internal/cli/repl"
	"github.com/yndnr/kappa-go/internal/infra/buildinfo"
	"github.com/yndnr/kappa-go/internal/infra/confloader"
	"github.com/yndnr/kappa-go/internal/telemetry/logger"
)

const metaRuntime = "runtime"

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:     "kappa-cli",
		Usage:    "Manage drops on a drop service",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Commands: append(dropCommands(), ConfigCommand()),
		Before:   setup,
		Action:   interactiveAction,
		After:    teardown,
		Metadata: map[string]any{},
	}

	return app
}

// globalFlags returns the global CLI flags. Flags override the config file
// and KAPPA_* environment variables.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Config file path (default ~/.kappa/cli.yaml)",
			EnvVars: []string{"KAPPA_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Use this URL for every drop endpoint",
		},
		&cli.StringFlag{
			Name:  "header-name",
			Usage: "Credential header name",
		},
		&cli.StringFlag{
			Name:  "header-value",
			Usage: "Credential header value",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout (0 waits indefinitely)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable coloured output",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Reload the config file when it changes",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// overridesFromFlags maps explicitly set flags to config keys.
func overridesFromFlags(c *cli.Context) map[string]any {
	overrides := map[string]any{}

	if c.IsSet("header-name") {
		overrides["credential.header"] = c.String("header-name")
	}
	if c.IsSet("header-value") {
		overrides["credential.value"] = c.String("header-value")
	}
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}
	if c.IsSet("timeout") {
		overrides["timeout"] = c.Duration("timeout")
	}
	if c.Bool("no-color") {
		overrides["color"] = false
	}
	if c.IsSet("watch") {
		overrides["watch"] = c.Bool("watch")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.Bool("verbose") {
		overrides["log.level"] = "debug"
	}

	return overrides
}

// runtime is the state shared by every command in one invocation.
type runtime struct {
	mu     sync.RWMutex
	config *config.CLIConfig

	configPath string
	overrides  map[string]any
	server     string
	useColor   bool
	manager    *connection.Manager
	executor   *Executor
	watcher    *confloader.Watcher
}

// load reads the configuration with this invocation's flags applied.
func (rt *runtime) load() (*config.CLIConfig, error) {
	path := rt.configPath
	if path == config.DefaultConfigPath() {
		path = ""
	}

	cfg, err := config.Load(path, rt.overrides)
	if err != nil {
		return nil, err
	}

	if rt.server != "" {
		cfg.SetServer(rt.server)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return cfg, nil
}

// currentConfig returns the configuration in effect. The watcher goroutine
// may swap it at any time.
func (rt *runtime) currentConfig() *config.CLIConfig {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.config
}

func (rt *runtime) setConfig(cfg *config.CLIConfig) {
	rt.mu.Lock()
	rt.config = cfg
	rt.mu.Unlock()
}

// connect points the manager at the endpoints and credential in cfg.
func (rt *runtime) connect(cfg *config.CLIConfig) error {
	return rt.manager.Connect(&connection.Connection{
		Endpoints: connection.Endpoints{
			List:   cfg.Endpoints.List,
			Create: cfg.Endpoints.Create,
			Edit:   cfg.Endpoints.Edit,
			Delete: cfg.Endpoints.Delete,
		},
		Credential: connection.Credential{
			Header: cfg.Credential.Header,
			Value:  cfg.Credential.Value,
		},
		Timeout: cfg.Timeout,
	})
}

// reload re-reads the config file and swaps the active connection. The
// output format and colour are fixed for the life of the process.
func (rt *runtime) reload(path string) {
	cfg, err := rt.load()
	if err != nil {
		logger.Warn("config reload failed, keeping current settings", "path", path, "error", err)
		return
	}

	if err := rt.connect(cfg); err != nil {
		logger.Warn("config reload failed, keeping current settings", "path", path, "error", err)
		return
	}

	logger.SetLevel(cfg.Log.Level)
	rt.setConfig(cfg)
	logger.Info("config reloaded", "path", path)
}

// setup loads configuration and wires the logger, connection and executor.
func setup(c *cli.Context) error {
	rt := &runtime{
		configPath: c.String("config"),
		overrides:  overridesFromFlags(c),
		server:     c.String("server"),
		manager:    connection.NewManager(),
	}
	if rt.configPath == "" {
		rt.configPath = config.DefaultConfigPath()
	}

	cfg, err := rt.load()
	if err != nil {
		return err
	}
	rt.setConfig(cfg)

	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)
	c.Context = logger.WithLogger(c.Context, log)

	if err := rt.connect(cfg); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	writer := c.App.Writer
	if writer == nil {
		writer = os.Stdout
	}
	rt.useColor = cfg.Color && repl.ColorSupported(writer)
	rt.executor = NewExecutor(rt.manager, writer, output.Format(cfg.Output), rt.useColor)

	if cfg.Watch {
		rt.startWatcher(log)
	}

	c.App.Metadata[metaRuntime] = rt

	log.Debug("kappa-cli started",
		"version", buildinfo.Version,
		"config", rt.configPath,
		"list_endpoint", cfg.Endpoints.List,
		"credential", cfg.Credential.Value,
	)
	return nil
}

// startWatcher reloads the config file on change. Failing to watch is not
// fatal.
func (rt *runtime) startWatcher(log logger.Logger) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		log.Warn("config watch disabled", "error", err)
		return
	}
	if err := w.Watch(rt.configPath); err != nil {
		w.Stop()
		log.Warn("config watch disabled", "path", rt.configPath, "error", err)
		return
	}

	w.OnChange(rt.reload)
	w.StartAsync()
	rt.watcher = w
}

// teardown stops the watcher before dropping the connection so a late
// reload cannot reconnect.
func teardown(c *cli.Context) error {
	rt := getRuntime(c)
	if rt == nil {
		return nil
	}

	var err error
	if rt.watcher != nil {
		err = rt.watcher.Stop()
	}
	rt.manager.Disconnect()
	return err
}

// interactiveAction runs the prompt until end of input or exit.
func interactiveAction(c *cli.Context) error {
	rt, err := connectedRuntime(c)
	if err != nil {
		return err
	}

	opts := []repl.Option{repl.WithColor(rt.useColor)}
	if c.App.Reader != nil {
		opts = append(opts, repl.WithInput(c.App.Reader))
	}
	if c.App.Writer != nil {
		opts = append(opts, repl.WithOutput(c.App.Writer))
	}

	return repl.New(rt.executor, opts...).Run(c.Context)
}

func getRuntime(c *cli.Context) *runtime {
	rt, _ := c.App.Metadata[metaRuntime].(*runtime)
	return rt
}

// connectedRuntime returns the runtime of an invocation whose setup
// completed with a live connection.
func connectedRuntime(c *cli.Context) (*runtime, error) {
	rt := getRuntime(c)
	if rt == nil {
		return nil, fmt.Errorf("cli not initialized")
	}
	if !rt.manager.IsConnected() {
		return nil, connection.ErrNotConnected
	}
	return rt, nil
}
