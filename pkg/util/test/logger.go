package test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"go.uber.org/atomic"
)

var _ log.Logger = (*TestingLogger)(nil)

// TestingLogger forwards go-kit log lines to t and keeps them so tests can
// assert on what was logged. It is safe for concurrent use.
type TestingLogger struct {
	t     testing.TB
	mtx   sync.Mutex
	lines [][]interface{}
	done  atomic.Bool
}

func NewTestingLogger(t testing.TB) *TestingLogger {
	logger := &TestingLogger{t: t}
	t.Cleanup(func() {
		logger.done.Store(true)
	})
	return logger
}

func (l *TestingLogger) Log(keyvals ...interface{}) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.lines = append(l.lines, keyvals)
	if !l.done.Load() {
		l.t.Log(keyvals...)
	}
	return nil
}

// Count returns the number of logged lines carrying key=value.
func (l *TestingLogger) Count(key string, value interface{}) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	n := 0
	for _, kv := range l.lines {
		for i := 0; i+1 < len(kv); i += 2 {
			if fmt.Sprint(kv[i]) == key && fmt.Sprint(kv[i+1]) == fmt.Sprint(value) {
				n++
				break
			}
		}
	}
	return n
}
