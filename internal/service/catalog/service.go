// Package catalog 설정 파일에 등록된 스케줄 목록을 사람이 읽을 수 있는 문구와 함께 제공합니다.
package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/darkkaiser/cronhuman/internal/config"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// component Catalog 서비스의 로깅용 컴포넌트 이름
const component = "catalog.service"

// Service 등록된 스케줄과 그 해석 결과를 관리하는 서비스입니다.
type Service struct {
	schedules []config.ScheduleConfig

	entries []Entry
	index   map[string]int

	running   bool
	runningMu sync.RWMutex
}

// NewService 새로운 Catalog 서비스 인스턴스를 생성합니다.
func NewService(schedules []config.ScheduleConfig) *Service {
	return &Service{
		schedules: schedules,
	}
}

// Start 등록된 스케줄을 해석하여 카탈로그를 구성합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Catalog 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Catalog 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.build()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"total_schedules": len(s.entries),
	}).Info("서비스 시작 완료: Catalog 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

func (s *Service) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	s.running = false

	applog.WithComponent(component).Info("Catalog 서비스 종료 완료")
}

// build 호출자는 runningMu를 보유하고 있어야 합니다.
//
// 스케줄 ID의 중복 여부는 설정 로드 단계에서 검증되므로, 여기서는 먼저 등록된 항목을 유지합니다.
func (s *Service) build() {
	s.entries = make([]Entry, 0, len(s.schedules))
	s.index = make(map[string]int, len(s.schedules))

	for _, sc := range s.schedules {
		if _, exists := s.index[sc.ID]; exists {
			applog.WithComponentAndFields(component, applog.Fields{
				"schedule_id": sc.ID,
			}).Warn("중복된 스케줄 ID는 무시합니다")
			continue
		}

		e := newEntry(sc)
		s.index[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)

		fields := applog.Fields{
			"schedule_id": e.ID,
			"time_spec":   e.TimeSpec,
			"summary":     e.Summary,
		}
		switch {
		case !e.Valid:
			applog.WithComponentAndFields(component, fields).Warn("스케줄 등록: Cron 스케줄러가 실행할 수 없는 표현식입니다")
		case !e.Describable:
			applog.WithComponentAndFields(component, fields).Info("스케줄 등록: 문구로 해석할 수 없어 원본 표현식을 사용합니다")
		default:
			applog.WithComponentAndFields(component, fields).Debug("스케줄 등록")
		}
	}
}

// List 등록된 모든 스케줄을 제목 순(한국어 정렬 규칙)으로 반환합니다. 제목이 같으면 ID 순입니다.
// 서비스가 시작되기 전에는 빈 목록을 반환합니다.
func (s *Service) List() []Entry {
	s.runningMu.RLock()
	list := slices.Clone(s.entries)
	s.runningMu.RUnlock()

	if list == nil {
		return []Entry{}
	}

	c := collate.New(language.Korean)
	slices.SortStableFunc(list, func(a, b Entry) int {
		if r := c.CompareString(a.Title, b.Title); r != 0 {
			return r
		}
		return c.CompareString(a.ID, b.ID)
	})

	return list
}

// Get ID에 해당하는 스케줄을 반환합니다. 없으면 NotFound 에러를 반환합니다.
func (s *Service) Get(id string) (Entry, error) {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Entry{}, NewErrScheduleNotFound(id)
	}
	return s.entries[i], nil
}
