package cronx

import (
	"fmt"
	"sync"

	descriptor "github.com/lnquy/cron"
)

// loadDescriptor 상세 설명 생성기는 초기화 비용이 크므로 최초 사용 시 한 번만 생성합니다.
var loadDescriptor = sync.OnceValues(func() (*descriptor.ExpressionDescriptor, error) {
	return descriptor.NewDescriptor(
		descriptor.Use24HourTimeFormat(false),
		descriptor.DayOfWeekStartsAtOne(false),
	)
})

// Explain Cron 표현식에 대한 장문(long-form)의 영문 설명을 반환합니다.
//
// Describe가 목록 화면 등에 표시할 짧은 문구를 만드는 것과 달리, Explain은 모든 필드를 빠짐없이
// 풀어서 설명합니다. 예: "0 30 8 1 * *" -> "At 08:30 AM, on day 1 of the month"
// 설명을 만들 수 없는 경우 에러를 반환합니다.
func Explain(spec string) (string, error) {
	if len(spec) > maxExpressionLength {
		return "", fmt.Errorf("Cron 표현식 설명 생성 실패(length=%d): %w", len(spec), ErrExpressionTooLong)
	}

	d, err := loadDescriptor()
	if err != nil {
		return "", fmt.Errorf("Cron 표현식 설명 생성기 초기화 실패: %w", err)
	}

	desc, err := d.ToDescription(spec, descriptor.Locale_en)
	if err != nil {
		return "", fmt.Errorf("Cron 표현식 설명 생성 실패(spec=%q): %w", spec, err)
	}
	return desc, nil
}
