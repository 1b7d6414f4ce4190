// Package testlog provides a log handler for unit tests.
package testlog

import (
	"bytes"
	"log/slog"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

var useColorInTestLog = os.Getenv("OP_TESTLOG_DISABLE_COLOR") != "true"

// Testing interface to log to. Standard Go testing.TB implements this.
type Testing interface {
	Logf(format string, args ...any)
	Helper()
	Name() string
	Cleanup(func())
}

// Logger returns a logger which logs to the unit test log of t.
// Output written after the test has completed is dropped.
func Logger(t Testing, level slog.Level) log.Logger {
	w := &testWriter{t: t}
	t.Cleanup(w.close)
	return log.NewLogger(log.NewTerminalHandlerWithLevel(w, level, useColorInTestLog))
}

// testWriter forwards every complete line to t.Logf.
type testWriter struct {
	t      Testing
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return len(p), nil
	}
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			w.buf.Write(line)
			break
		}
		w.t.Logf("%s", bytes.TrimRight(line, "\n"))
	}
	return len(p), nil
}

func (w *testWriter) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}
