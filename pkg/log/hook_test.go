package log

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failWriter 항상 에러를 반환하는 Writer입니다.
type failWriter struct {
	err error
}

func (w *failWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

type errorFormatter struct{}

func (f *errorFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, errors.New("formatting failed")
}

// safeBuffer Fire는 RLock 하에서 동시에 호출될 수 있으므로 동시성 안전한 버퍼를 사용합니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type testWriters struct {
	main, critical, verbose, console *safeBuffer
}

func newTestHook() (*hook, testWriters) {
	w := testWriters{main: &safeBuffer{}, critical: &safeBuffer{}, verbose: &safeBuffer{}, console: &safeBuffer{}}
	h := &hook{
		mainWriter:     w.main,
		criticalWriter: w.critical,
		verboseWriter:  w.verbose,
		consoleWriter:  w.console,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}
	return h, w
}

func newEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{level: PanicLevel, wantMain: true, wantCritical: true},
		{level: FatalLevel, wantMain: true, wantCritical: true},
		{level: ErrorLevel, wantMain: true, wantCritical: true},
		{level: WarnLevel, wantMain: true},
		{level: InfoLevel, wantMain: true},
		{level: DebugLevel, wantVerbose: true},
		{level: TraceLevel, wantVerbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			h, w := newTestHook()
			require.NoError(t, h.Fire(newEntry(tt.level, "routing-test")))

			assert.Equal(t, tt.wantMain, strings.Contains(w.main.String(), "routing-test"), "main")
			assert.Equal(t, tt.wantCritical, strings.Contains(w.critical.String(), "routing-test"), "critical")
			assert.Equal(t, tt.wantVerbose, strings.Contains(w.verbose.String(), "routing-test"), "verbose")
			assert.Contains(t, w.console.String(), "routing-test", "콘솔에는 모든 레벨이 출력되어야 합니다")
		})
	}
}

func TestHook_NilWriters(t *testing.T) {
	t.Parallel()

	console := &safeBuffer{}
	h := &hook{consoleWriter: console, formatter: &logrus.TextFormatter{DisableTimestamp: true}}

	for _, level := range AllLevels {
		assert.NoError(t, h.Fire(newEntry(level, "console-only")))
	}
	assert.Contains(t, console.String(), "console-only")
}

func TestHook_WriteFailure(t *testing.T) {
	t.Parallel()

	t.Run("Critical 실패 시에도 Main 기록은 수행", func(t *testing.T) {
		t.Parallel()

		main := &safeBuffer{}
		writeErr := errors.New("disk full")
		h := &hook{
			mainWriter:     main,
			criticalWriter: &failWriter{err: writeErr},
			formatter:      &logrus.TextFormatter{DisableTimestamp: true},
		}

		err := h.Fire(newEntry(ErrorLevel, "boom"))
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, main.String(), "boom")
	})

	t.Run("콘솔 실패는 전파하지 않음", func(t *testing.T) {
		t.Parallel()

		main := &safeBuffer{}
		h := &hook{
			mainWriter:    main,
			consoleWriter: &failWriter{err: errors.New("closed pipe")},
			formatter:     &logrus.TextFormatter{DisableTimestamp: true},
		}

		assert.NoError(t, h.Fire(newEntry(InfoLevel, "hello")))
		assert.Contains(t, main.String(), "hello")
	})

	t.Run("포맷팅 실패", func(t *testing.T) {
		t.Parallel()

		h := &hook{mainWriter: &safeBuffer{}, formatter: &errorFormatter{}}
		assert.Error(t, h.Fire(newEntry(InfoLevel, "x")))
	})
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	h, w := newTestHook()
	require.NoError(t, h.Close())

	assert.NoError(t, h.Fire(newEntry(ErrorLevel, "after-close")))
	assert.Empty(t, w.main.String())
	assert.Empty(t, w.console.String())
}

func TestHook_ConcurrentFire(t *testing.T) {
	t.Parallel()

	h, w := newTestHook()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Fire(newEntry(InfoLevel, "concurrent"))
		}()
	}

	// 기록 도중 Close가 호출되어도 안전해야 합니다.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.Close()
	}()

	wg.Wait()
	assert.True(t, h.closed)
	assert.NotPanics(t, func() { _ = w.main.String() })
}
