package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/0xsj/modaled/internal/assist"
	"github.com/0xsj/modaled/internal/config"
	"github.com/0xsj/modaled/internal/input/key"
	"github.com/0xsj/modaled/internal/input/mode"
	"github.com/0xsj/modaled/internal/input/vim"
)

// Application is the central coordinator: it owns the configuration,
// the logger, the modal command parser, and the optional AI-assist
// provider. It holds no terminal or rendering state — the host
// (cmd/modaled) owns the tcell screen and drives Application by
// calling Feed for every key event.
type Application struct {
	mu sync.RWMutex

	config *config.Config
	logger *Logger
	parser *vim.ModalParser
	assist assist.Provider

	running atomic.Bool
	opts    Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means
	// config.DefaultUserConfigPath().
	ConfigPath string

	// Debug enables debug-level logging regardless of LogLevel or the
	// config file's [logging] section.
	Debug bool

	// LogLevel sets the logging verbosity ("debug", "info", "warn",
	// "error"), overriding the config file's [logging] level for this
	// run. Empty defers to [logging].level. Ignored if Debug is set.
	LogLevel string
}

// New creates a new Application with the given options. It loads
// configuration and, if a provider is configured, constructs the
// AI-assist backend — a missing or disabled assist provider is not
// fatal, it just leaves the F1 hotkey inert.
func New(opts Options) (*Application, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultUserConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	level := ParseLogLevel(cfg.Logging.Level)
	if opts.LogLevel != "" {
		level = ParseLogLevel(opts.LogLevel)
	}
	if opts.Debug {
		level = LogLevelDebug
	}
	format := ParseLogFormat(cfg.Logging.Format)
	logger := NewLogger(LoggerConfig{Level: level, Format: format, Prefix: "modaled"})

	app := &Application{
		config: cfg,
		logger: logger,
		parser: vim.NewModalParser(),
		opts:   opts,
	}

	provider, err := assist.New(cfg.AI)
	switch {
	case err == nil:
		app.assist = provider
	case err == assist.ErrDisabled:
		logger.WithComponent("assist").Debug("no provider configured")
	default:
		logger.WithComponent("assist").Warn("disabled: %v", err)
	}

	return app, nil
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's structured logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Mode returns the parser's current mode.
func (app *Application) Mode() mode.Mode {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.parser.Mode()
}

// Feed delivers one key event to the modal parser, returning the
// completed Cmd if this key finished a command. Safe to call from a
// single host goroutine only — the parser does not serialize
// internally.
func (app *Application) Feed(k key.Event) *vim.Cmd {
	app.mu.Lock()
	defer app.mu.Unlock()

	cmd := app.parser.Feed(k)
	if cmd != nil {
		app.logger.WithComponent("vim").Debug("%s repeat=%d", cmd.Kind, cmd.Repeat)
		app.applyModeEffect(*cmd)
	}
	return cmd
}

// applyModeEffect updates the parser's tracked mode for commands that
// carry a mode transition. The parser does not infer this on its own
// (see vim.ModalParser.SetMode) — the executor is expected to call
// this after it has actually applied the Cmd's text effect, but the
// mode bit itself is harmless to apply eagerly here since Move/
// operator commands never race it.
func (app *Application) applyModeEffect(cmd vim.Cmd) {
	switch cmd.Kind {
	case vim.CmdSwitchMode, vim.CmdSwitchMove:
		app.parser.SetMode(cmd.SwitchMode)
	case vim.CmdNewLine:
		if cmd.NewLineSwitchMode {
			app.parser.SetMode(mode.Insert)
		}
	}
}

// Assist returns the AI-assist provider, or nil if none is
// configured.
func (app *Application) Assist() assist.Provider {
	return app.assist
}

// Explain asks the assist provider (if any) to explain a completed
// Cmd, for display on the status line. Returns assist.ErrDisabled if
// no provider is configured.
func (app *Application) Explain(ctx context.Context, description string) (string, error) {
	if app.assist == nil {
		return "", assist.ErrDisabled
	}
	return app.assist.Explain(ctx, description)
}

// MarkRunning transitions the application into the running state.
// Returns ErrAlreadyRunning if it was already running.
func (app *Application) MarkRunning() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	return nil
}

// MarkStopped transitions the application out of the running state.
func (app *Application) MarkStopped() {
	app.running.Store(false)
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
