// Package app wires the template's runtime together: signal-driven graceful
// shutdown, the startup banner and the periodic counter loop.
package app

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/config"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/logger"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/sysinfo"
	"github.com/rezasaadat1/armhf-cross-compile/pkg/version"
)

const bannerRule = "==========================================="

// App is the long-running program: it installs signal handlers, prints the
// info banner and ticks until told to stop.
type App struct {
	// ConfigPath, when set, is watched for changes. Changes are only
	// reported; settings apply on the next restart.
	ConfigPath string

	cfg *config.Config
	log *logger.Logger

	running atomic.Bool
}

// New returns an App in the running state.
func New(cfg *config.Config, log *logger.Logger) *App {
	a := &App{cfg: cfg, log: log}
	a.running.Store(true)
	return a
}

// Running reports whether the main loop should keep ticking.
func (a *App) Running() bool {
	return a.running.Load()
}

// Stop clears the running flag. The main loop exits within one tick.
func (a *App) Stop() {
	a.running.Store(false)
}

// Run executes the full program: signal wiring, logger level from build
// mode, banner, main loop. It returns after a graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go a.waitForShutdown(ctx, sigCh)

	a.configureLogger()

	a.log.Infof("Application starting...")

	a.printBuildInfo()
	a.debugSelfCheck()
	a.printSystemInfo()
	a.printUserInfo()

	a.log.Debugf("Run ID: %s", uuid.NewString())

	if a.ConfigPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			a.log.Warnf("Failed to create config file watcher: %v", err)
		} else {
			defer func() {
				if err := watcher.Close(); err != nil {
					a.log.Warnf("Failed to close config file watcher: %v", err)
				}
			}()
			if err := watcher.Add(a.ConfigPath); err != nil {
				a.log.Warnf("Failed to watch config file %s: %v", a.ConfigPath, err)
			} else {
				a.log.Debugf("Watching config file for changes: %s", a.ConfigPath)
				go a.reportConfigChanges(watcher)
			}
		}
	}

	a.mainLoop()

	a.log.Infof("Application terminated gracefully")
	return nil
}

// PrintInfo emits the startup banner once, without entering the main loop.
// Used by the info subcommand.
func (a *App) PrintInfo() {
	a.configureLogger()
	a.printBuildInfo()
	a.debugSelfCheck()
	a.printSystemInfo()
	a.printUserInfo()
}

// waitForShutdown blocks until a signal arrives or the context is canceled,
// then clears the running flag. Go delivers signals on an ordinary
// goroutine, so logging here is safe; there is no async-signal-safety
// constraint to honor.
func (a *App) waitForShutdown(ctx context.Context, sigCh <-chan os.Signal) {
	select {
	case sig := <-sigCh:
		a.log.Warnf("Received signal %d (%s), shutting down...", signalNumber(sig), signalName(sig))
	case <-ctx.Done():
	}
	a.running.Store(false)
}

func signalName(sig os.Signal) string {
	switch sig {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}

func signalNumber(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return int(s)
	}
	return -1
}

// configureLogger applies the build-mode default level, then the config
// override if one is set. This happens once at startup; the level is not
// reconfigured afterwards.
func (a *App) configureLogger() {
	if version.Debug {
		a.log.SetLevel(logger.LevelDebug)
		a.log.Debugf("Logger configured for DEBUG build (showing DEBUG and above)")
	} else {
		a.log.SetLevel(logger.LevelInfo)
		a.log.Infof("Logger configured for RELEASE build (showing INFO and above)")
	}

	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			a.log.Warnf("Ignoring invalid log level %q: %v", a.cfg.LogLevel, err)
			return
		}
		a.log.SetLevel(level)
	}
}

// printBuildInfo logs toolchain details in debug builds and nothing in
// release builds.
func (a *App) printBuildInfo() {
	if !version.Debug {
		return
	}
	a.log.Debugf("=== DEBUG BUILD INFORMATION ===")
	a.log.Debugf("Compiler: %s", runtime.Version())
	a.log.Debugf("Target: %s/%s", runtime.GOOS, runtime.GOARCH)
	if bi, ok := debug.ReadBuildInfo(); ok {
		a.log.Debugf("Module: %s", bi.Main.Path)
		for _, s := range bi.Settings {
			if s.Key == "vcs.time" {
				a.log.Debugf("Compiled: %s", s.Value)
			}
		}
	}
	if _, file, _, ok := runtime.Caller(0); ok {
		a.log.Debugf("File: %s", file)
	}
	a.log.Debugf("================================")
}

// debugSelfCheck exercises an allocation and a memory stat read in debug
// builds. Failures here are not critical; the checks are demonstration
// paths.
func (a *App) debugSelfCheck() {
	if !version.Debug {
		return
	}

	buf := make([]byte, 100)
	for i := range buf {
		buf[i] = 0
	}
	a.log.Debugf("Memory allocation test: %p (100 bytes)", &buf[0])
	// Nothing to free explicitly; the GC owns the buffer.
	a.log.Debugf("Memory freed successfully")

	if used, total, err := sysinfo.MemoryUsage(); err == nil {
		a.log.Debugf("Memory: %d/%d MiB in use", used>>20, total>>20)
	}
}

func (a *App) printSystemInfo() {
	u, err := sysinfo.ReadUname()
	if err != nil {
		a.log.Errorf("uname() failed")
		return
	}
	a.log.Infof(bannerRule)
	a.log.Infof("  %s v%s [%s]", version.ProjectName, version.Version, version.BuildMode())
	a.log.Infof(bannerRule)
	a.log.Infof("System:       %s", u.System)
	a.log.Infof("Node:         %s", u.Node)
	a.log.Infof("Release:      %s", u.Release)
	a.log.Infof("Machine:      %s", u.Machine)
	a.log.Infof("Build Target: %s", version.ArchitectureName())
	a.log.Infof("Build Mode:   %s", version.BuildMode())
	a.log.Infof(bannerRule)
}

func (a *App) printUserInfo() {
	if euid := os.Geteuid(); euid == 0 {
		a.log.Warnf("Running as root")
	} else {
		a.log.Debugf("Running as user (UID: %d)", euid)
	}

	name, fromEnv, ok := sysinfo.LoginName()
	switch {
	case !ok:
		a.log.Warnf("User: Unknown")
	case fromEnv:
		a.log.Infof("User: %s (from env)", name)
	default:
		a.log.Infof("User: %s", name)
	}
}

// mainLoop ticks until the running flag clears. The flag is checked once
// per tick, so shutdown latency is bounded by one tick interval plus one
// log emission.
func (a *App) mainLoop() {
	a.log.Infof("Starting main loop (Ctrl+C to exit)...")

	interval := a.cfg.TickInterval.Duration
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}

	counter := 0
	for a.running.Load() {
		a.logTick(counter)
		counter++
		time.Sleep(interval)
	}

	a.log.Infof("Main loop exited after %d iterations", counter)
}

// logTick emits the per-tick lines for counter value n. Debug builds log
// every tick and a trace line every 10th; release builds log every 10th
// tick only.
func (a *App) logTick(n int) {
	if version.Debug {
		a.log.Debugf("Counter: %d", n)
	} else if n%10 == 0 {
		a.log.Infof("Counter: %d (release mode - showing every 10th)", n)
	}
	if version.Debug && n%10 == 0 {
		a.log.Tracef("Periodic trace at counter=%d", n)
	}
}

// reportConfigChanges announces config file edits. Settings are read once
// at startup, so the log line only tells the operator a restart is needed.
func (a *App) reportConfigChanges(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				a.log.Infof("Configuration file changed, restart to apply: %s", event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			a.log.Warnf("Config watcher error: %v", err)
		}
	}
}
