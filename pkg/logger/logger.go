// Package logger provides a small leveled logger with call-site annotations.
//
// Every accepted call emits exactly one line:
//
//	2025-12-03 13:23:56 DEBUG [run] [main.go:42] : pthread count: 6
//
// The header is fixed width: a 19-byte local timestamp, a 5-byte level tag,
// the unqualified caller function name and the trailing component of the
// caller's source file. Output defaults to stdout and can be redirected with
// SetOutput. Logging is best-effort; write errors on the sink are ignored.
//
// FATAL is a level, not a control-flow primitive: Fatalf emits and returns.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Now returns the wall-clock time used for line timestamps. Tests override it
// to pin timestamps.
var Now = time.Now

// Logger filters by minimum level and writes one line per accepted call to a
// single sink. The zero value is not usable; construct with New or use the
// process-wide Default.
type Logger struct {
	min atomic.Int32

	mu  sync.Mutex
	out io.Writer
}

// New returns a logger writing to stdout with the minimum level set to Debug.
// Note the default suppresses TRACE; call SetLevel(LevelTrace) to see trace
// lines.
func New() *Logger {
	l := &Logger{out: os.Stdout}
	l.min.Store(int32(LevelDebug))
	return l
}

// SetLevel sets the minimum accepted level. Takes effect for subsequent calls.
func (l *Logger) SetLevel(level Level) {
	l.min.Store(int32(level))
}

// Level returns the current minimum accepted level.
func (l *Logger) Level() Level {
	return Level(l.min.Load())
}

// SetOutput redirects log lines to w. The logger does not own the writer and
// never closes it. A nil writer is ignored.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

type flusher interface {
	Flush() error
}

// Output emits one line at the given level, or nothing if the level is below
// the minimum. calldepth is the number of stack frames to skip when locating
// the call site; 2 makes the annotations point at the caller of a helper like
// Infof. The full line, newline included, reaches the sink in a single write,
// and sinks implementing Flush() error are flushed before return.
func (l *Logger) Output(calldepth int, level Level, format string, args ...any) {
	if level < l.Level() {
		return
	}

	fn, file, line := callSite(calldepth + 1)

	var b bytes.Buffer
	b.WriteString(Now().Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteString(" [")
	b.WriteString(fn)
	b.WriteString("] [")
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(line))
	b.WriteString("] : ")
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(b.Bytes())
	if f, ok := l.out.(flusher); ok {
		_ = f.Flush()
	}
}

// Tracef logs at TRACE level with fmt.Sprintf semantics.
func (l *Logger) Tracef(format string, args ...any) {
	l.Output(2, LevelTrace, format, args...)
}

// Debugf logs at DEBUG level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Output(2, LevelDebug, format, args...)
}

// Infof logs at INFO level.
func (l *Logger) Infof(format string, args ...any) {
	l.Output(2, LevelInfo, format, args...)
}

// Warnf logs at WARN level.
func (l *Logger) Warnf(format string, args ...any) {
	l.Output(2, LevelWarn, format, args...)
}

// Errorf logs at ERROR level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Output(2, LevelError, format, args...)
}

// Fatalf logs at FATAL level. It does not terminate the process.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Output(2, LevelFatal, format, args...)
}

// callSite resolves the caller's function name, file and line. skip counts
// frames the same way runtime.Caller does.
func callSite(skip int) (fn, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	fn = "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = shortFuncName(f.Name())
	}
	return fn, shortFile(file), line
}

// shortFuncName strips the package path and receiver from a fully qualified
// function name: "github.com/x/y/pkg.(*App).Run" becomes "Run".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// shortFile returns the trailing component of a source path. Both separator
// styles are recognized so cross-compiled Windows paths shorten too.
func shortFile(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
