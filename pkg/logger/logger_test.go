package logger

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

// headerRe matches the fixed line header up to and including the " : "
// separator.
var headerRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} (TRACE|DEBUG|INFO |WARN |ERROR|FATAL) \[[^\]]+\] \[[^:]+:\d+\] : `)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := New()
	l.SetOutput(buf)
	return l, buf
}

func pinClock(t *testing.T, ts time.Time) {
	t.Helper()
	Now = func() time.Time { return ts }
	t.Cleanup(func() { Now = time.Now })
}

func TestInfoLineExact(t *testing.T) {
	pinClock(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local))

	l, buf := newTestLogger(t)
	l.SetLevel(LevelInfo)

	_, _, here, _ := runtime.Caller(0)
	l.Infof("hello %s", "world")

	want := fmt.Sprintf("2025-01-02 03:04:05 INFO  [TestInfoLineExact] [logger_test.go:%d] : hello world\n", here+1)
	if got := buf.String(); got != want {
		t.Fatalf("line mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestFilteredCallProducesNoOutput(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetLevel(LevelInfo)

	l.Debugf("x=%d", 7)
	if buf.Len() != 0 {
		t.Fatalf("suppressed call wrote output: %q", buf.String())
	}
}

func TestWarnLinePassesTraceMinimum(t *testing.T) {
	pinClock(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local))

	l, buf := newTestLogger(t)
	l.SetLevel(LevelTrace)

	_, _, here, _ := runtime.Caller(0)
	l.Warnf("n=%d", 42)

	want := fmt.Sprintf("2025-01-02 03:04:05 WARN  [TestWarnLinePassesTraceMinimum] [logger_test.go:%d] : n=42\n", here+1)
	if got := buf.String(); got != want {
		t.Fatalf("line mismatch:\n got: %q\nwant: %q", got, want)
	}
}

// Emitting at level a implies emitting at every level above a, for any
// minimum.
func TestLevelFilterMonotonic(t *testing.T) {
	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
	for _, min := range levels {
		emitted := make(map[Level]bool)
		for _, at := range levels {
			l, buf := newTestLogger(t)
			l.SetLevel(min)
			l.Output(1, at, "probe")
			emitted[at] = buf.Len() > 0

			if want := at >= min; emitted[at] != want {
				t.Fatalf("min=%v level=%v: emitted=%v want=%v", min, at, emitted[at], want)
			}
		}
		for i, a := range levels {
			for _, b := range levels[i+1:] {
				if emitted[a] && !emitted[b] {
					t.Fatalf("min=%v: level %v emitted but higher level %v suppressed", min, a, b)
				}
			}
		}
	}
}

func TestOneLinePerCall(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetLevel(LevelTrace)

	l.Tracef("a")
	l.Debugf("b")
	l.Infof("c")
	l.Warnf("d")
	l.Errorf("e")
	l.Fatalf("f")

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output not newline terminated: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", n, out)
	}
	for _, line := range strings.SplitAfter(strings.TrimSuffix(out, "\n"), "\n") {
		if !headerRe.MatchString(line) {
			t.Fatalf("malformed header: %q", line)
		}
	}
}

func TestHeaderFormat(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Infof("message with [brackets] and : colons")

	if !headerRe.MatchString(buf.String()) {
		t.Fatalf("header does not match layout: %q", buf.String())
	}
}

func TestFatalDoesNotTerminate(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Fatalf("still here")
	// Reaching this point is the assertion; check the line went out too.
	if !strings.Contains(buf.String(), "FATAL") {
		t.Fatalf("expected FATAL line, got: %q", buf.String())
	}
}

func TestUnknownLevelTag(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Output(1, Level(42), "odd")

	if !strings.Contains(buf.String(), " ????? [") {
		t.Fatalf("expected ????? tag for unknown level, got: %q", buf.String())
	}
}

func TestShortFile(t *testing.T) {
	cases := map[string]string{
		"src/a.cpp":        "a.cpp",
		"/tmp/dir/b.c":     "b.c",
		`C:\proj\main.cpp`: "main.cpp",
		"main.go":          "main.go",
		"a/b\\c.go":        "c.go",
	}
	for in, want := range cases {
		if got := shortFile(in); got != want {
			t.Errorf("shortFile(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShortFuncName(t *testing.T) {
	cases := map[string]string{
		"main.foo": "foo",
		"github.com/rezasaadat1/armhf-cross-compile/pkg/app.(*App).Run": "Run",
		"pkg.Bare": "Bare",
	}
	for in, want := range cases {
		if got := shortFuncName(in); got != want {
			t.Errorf("shortFuncName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmbeddedNewlinesPassThrough(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Infof("first\nsecond")

	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Fatalf("embedded newline not passed through verbatim: %q", buf.String())
	}
}

// A sink with a Flush method is flushed before the call returns.
func TestBufferedSinkFlushed(t *testing.T) {
	var backing bytes.Buffer
	bw := bufio.NewWriterSize(&backing, 4096)

	l := New()
	l.SetOutput(bw)
	l.Infof("flushed")

	if !strings.Contains(backing.String(), "flushed") {
		t.Fatalf("line not flushed to backing writer: %q", backing.String())
	}
}

func TestSetOutputNilIgnored(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetOutput(nil)
	l.Infof("still writing")

	if buf.Len() == 0 {
		t.Fatal("nil SetOutput should keep the previous sink")
	}
}

func TestConcurrentEmitKeepsLinesIntact(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetLevel(LevelTrace)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Infof("worker=%d seq=%d", n, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8*50 {
		t.Fatalf("expected %d lines, got %d", 8*50, len(lines))
	}
	for _, line := range lines {
		if !headerRe.MatchString(line) {
			t.Fatalf("interleaved or malformed line: %q", line)
		}
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned distinct instances")
	}
}

func TestPackageHelpersCaptureCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() { SetOutput(new(bytes.Buffer)) })
	Default().SetLevel(LevelDebug)

	Infof("via package helper")

	out := buf.String()
	if !strings.Contains(out, "[TestPackageHelpersCaptureCaller]") {
		t.Fatalf("expected caller function in line, got: %q", out)
	}
	if !strings.Contains(out, "[logger_test.go:") {
		t.Fatalf("expected caller file in line, got: %q", out)
	}
}
