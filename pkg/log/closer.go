package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Hook과 로그 파일들을 한 번에 정리합니다.
//
// Hook을 먼저 닫아 닫힌 파일에 대한 쓰기를 막은 뒤 파일을 닫으며,
// 일부 파일 닫기에 실패해도 나머지 파일은 모두 닫습니다. 두 번째 이후의 Close는 아무 것도 하지 않습니다.
type closer struct {
	closers []io.Closer
	hook    *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
