package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그를 여러 Writer로 분배합니다.
//
// 라우팅 정책:
//   - Console: 모든 레벨
//   - Critical: ERROR 이상
//   - Main: INFO 이상 (ERROR 이상 포함)
//   - Verbose: DEBUG 이하 (Main에는 기록하지 않음)
//
// 설정되지 않은(nil) Writer는 건너뜁니다. CLI 프로필처럼 파일 출력을 끈 경우에는
// Console만 설정되므로 모든 로그가 콘솔로만 전달됩니다.
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex // 기록(RLock)과 종료(Lock) 사이의 동기화
	closed bool
}

// Levels 모든 레벨을 수신합니다. 레벨별 분기는 Fire에서 수행합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 한 번 포맷팅한 뒤 라우팅 정책에 따라 각 Writer에 기록합니다.
//
// Returns:
//   - 파일 Writer 중 처음 발생한 쓰기 에러 (콘솔 쓰기 실패는 stderr에 경고만 남기고 반환하지 않음)
//   - Close 이후에는 아무것도 기록하지 않고 nil
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", channel, err)
		}
	}

	// DEBUG/TRACE는 Verbose에만 기록
	if entry.Level >= DebugLevel {
		write(h.verboseWriter, "Verbose")
		return firstErr
	}

	// ERROR 이상은 Critical과 Main 모두에 기록
	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}
	write(h.mainWriter, "Main")

	return firstErr
}

// Close 진행 중인 기록이 끝날 때까지 기다린 후 이후의 기록을 모두 무시하도록 전환합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
