package catalog

import (
	"github.com/darkkaiser/cronhuman/internal/config"
	"github.com/darkkaiser/cronhuman/pkg/cronx"
)

// Entry 카탈로그에 등록된 스케줄 하나와 그 해석 결과입니다.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TimeSpec    string `json:"time_spec"`

	// Summary 사람이 읽을 수 있는 짧은 문구입니다. 해석할 수 없으면 TimeSpec이 그대로 들어갑니다.
	Summary string `json:"summary"`

	// Explanation 모든 필드를 풀어 쓴 장문 설명입니다. 만들 수 없으면 비어 있습니다.
	Explanation string `json:"explanation,omitempty"`

	// Describable 짧은 문구로 해석되었는지 여부
	Describable bool `json:"describable"`

	// Valid Cron 스케줄러가 실행할 수 있는 표현식인지 여부
	Valid bool `json:"valid"`
}

// newEntry 설정 값으로부터 Entry를 생성합니다. 해석 결과는 생성 시점에 한 번만 계산합니다.
func newEntry(sc config.ScheduleConfig) Entry {
	e := Entry{
		ID:          sc.ID,
		Title:       sc.Title,
		Description: sc.Description,
		TimeSpec:    sc.TimeSpec,
		Summary:     sc.TimeSpec,
	}

	if summary, err := cronx.TryDescribe(sc.TimeSpec); err == nil {
		e.Summary = summary
		e.Describable = true
	}
	if explanation, err := cronx.Explain(sc.TimeSpec); err == nil {
		e.Explanation = explanation
	}
	e.Valid = cronx.Validate(sc.TimeSpec) == nil

	return e
}
