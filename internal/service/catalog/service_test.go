package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/cronhuman/internal/config"
	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSchedules() []config.ScheduleConfig {
	return []config.ScheduleConfig{
		{ID: "report", Title: "주간 리포트", TimeSpec: "0 9 * * 1"},
		{ID: "backup", Title: "백업", Description: "DB 백업", TimeSpec: "0 2 * * *"},
		{ID: "odd", Title: "기타", TimeSpec: "*/7 2 * * 3"},
		{ID: "broken", Title: "깨진 스케줄", TimeSpec: "not a cron"},
		{ID: "backup", Title: "중복", TimeSpec: "* * * * *"},
	}
}

// startService 서비스를 시작하고, 테스트 종료 시 중지 후 고루틴 종료까지 대기합니다.
func startService(t *testing.T, s *Service) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

// =============================================================================
// 1. Lifecycle
// =============================================================================

func TestService_Start(t *testing.T) {
	t.Parallel()

	t.Run("정상 시작 및 종료", func(t *testing.T) {
		t.Parallel()

		s := NewService(testSchedules())

		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		wg.Add(1)
		require.NoError(t, s.Start(ctx, &wg))

		s.runningMu.RLock()
		assert.True(t, s.running)
		assert.Len(t, s.entries, 4, "중복된 ID는 먼저 등록된 항목만 유지해야 합니다")
		s.runningMu.RUnlock()

		cancel()
		wg.Wait()

		s.runningMu.RLock()
		assert.False(t, s.running)
		s.runningMu.RUnlock()
	})

	t.Run("중복 시작", func(t *testing.T) {
		t.Parallel()

		s := NewService(testSchedules())
		startService(t, s)

		var wg sync.WaitGroup
		wg.Add(1)
		require.NoError(t, s.Start(context.Background(), &wg))

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("중복 시작 시 WaitGroup.Done()이 즉시 호출되어야 합니다")
		}
	})

	t.Run("시작 전에는 빈 목록", func(t *testing.T) {
		t.Parallel()

		s := NewService(testSchedules())
		assert.Empty(t, s.List())
		assert.NotNil(t, s.List())

		_, err := s.Get("backup")
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})

	t.Run("스케줄이 없는 경우", func(t *testing.T) {
		t.Parallel()

		s := NewService(nil)
		startService(t, s)

		assert.Empty(t, s.List())
	})
}

// =============================================================================
// 2. Entries
// =============================================================================

func TestService_Entries(t *testing.T) {
	t.Parallel()

	s := NewService(testSchedules())
	startService(t, s)

	tests := []struct {
		id          string
		summary     string
		describable bool
		valid       bool
	}{
		{id: "report", summary: "Mondays at 9 AM", describable: true, valid: true},
		{id: "backup", summary: "Daily at 2 AM", describable: true, valid: true},
		{id: "odd", summary: "*/7 2 * * 3", describable: false, valid: true},
		{id: "broken", summary: "not a cron", describable: false, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			e, err := s.Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.summary, e.Summary)
			assert.Equal(t, tt.describable, e.Describable)
			assert.Equal(t, tt.valid, e.Valid)
		})
	}

	t.Run("설정 값 보존", func(t *testing.T) {
		t.Parallel()

		backup, err := s.Get("backup")
		require.NoError(t, err)
		assert.Equal(t, "백업", backup.Title)
		assert.Equal(t, "DB 백업", backup.Description)
		assert.Equal(t, "0 2 * * *", backup.TimeSpec, "중복된 ID는 먼저 등록된 항목을 유지해야 합니다")
		assert.NotEmpty(t, backup.Explanation)
	})

	t.Run("설명을 만들 수 없는 표현식", func(t *testing.T) {
		t.Parallel()

		broken, err := s.Get("broken")
		require.NoError(t, err)
		assert.Empty(t, broken.Explanation)
	})
}

// =============================================================================
// 3. Queries
// =============================================================================

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("한국어 제목 순 정렬", func(t *testing.T) {
		t.Parallel()

		s := NewService(testSchedules())
		startService(t, s)

		list := s.List()
		ids := make([]string, 0, len(list))
		for _, e := range list {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, []string{"odd", "broken", "backup", "report"}, ids)
	})

	t.Run("제목이 같으면 ID 순", func(t *testing.T) {
		t.Parallel()

		s := NewService([]config.ScheduleConfig{
			{ID: "b", Title: "같음", TimeSpec: "0 1 * * *"},
			{ID: "a", Title: "같음", TimeSpec: "0 2 * * *"},
		})
		startService(t, s)

		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
	})

	t.Run("반환된 목록을 수정해도 카탈로그는 그대로", func(t *testing.T) {
		t.Parallel()

		s := NewService(testSchedules())
		startService(t, s)

		list := s.List()
		list[0].Title = "변경"

		e, err := s.Get(list[0].ID)
		require.NoError(t, err)
		assert.NotEqual(t, "변경", e.Title)
	})
}

func TestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	s := NewService(testSchedules())
	startService(t, s)

	_, err := s.Get("missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
	assert.Contains(t, err.Error(), "ID=missing")
}

func TestService_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewService(testSchedules())
	startService(t, s)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.List()
			_, _ = s.Get("backup")
		}()
	}
	wg.Wait()
}
