// Package runtime provides application runtime context for recordar.
package runtime

import (
	"os"

	"recordar/internal/clock"
	"recordar/internal/config"
	"recordar/internal/output"
	"recordar/internal/sched"
	"recordar/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	DB        *storage.DB
	Store     *storage.Store
	Scheduler *sched.Scheduler
	Clock     clock.Clock
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath string
	// DBPathSet marks DBPath as an explicit user choice that wins over
	// the environment and config file.
	DBPathSet bool
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Precedence: explicit flag, then environment, then config.
	if !opts.DBPathSet {
		if envPath := os.Getenv("RECORDAR_DATABASE"); envPath != "" {
			if envPath == ":memory:" {
				opts.InMemory = true
			} else {
				opts.DBPath = envPath
			}
		} else if cfg.DataDir == ":memory:" {
			opts.InMemory = true
		} else if cfg.DataDir != "" {
			opts.DBPath = cfg.DataDir
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	clk := clock.System()

	store := storage.OpenStore(db, clk)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    cfg,
		DB:        db,
		Store:     store,
		Clock:     clk,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// AttachScheduler wires a scheduler into the context and registers it as
// the store's trigger canceller, so soft deletes cancel pending triggers.
func (c *Context) AttachScheduler(s *sched.Scheduler) {
	c.Scheduler = s
	c.Store.SetCanceller(s)
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
