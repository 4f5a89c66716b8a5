package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 스케줄러 호환성 검사에 사용하는 Cron 표현식 파서를 반환합니다.
//
// 이 파서는 초 필드를 선택적으로 허용하므로 5필드와 6필드 표현식을 모두 해석합니다.
//
// 지원 스펙:
//   - 필드 순서: [초] 분 시 일 월 요일
//   - 특수 표현식: @daily, @hourly, @every <duration> 등 (Descriptor)
//   - 월/요일 이름: JAN, MON-FRI 등
//
// 예시:
//   - "0 */5 * * * *" : 매 5분 0초마다 실행
//   - "*/5 * * * *"   : 매 5분마다 실행
//   - "@daily"        : 매일 자정에 실행
func StandardParser() cron.Parser {
	return cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate Cron 스케줄러가 해당 표현식을 실행 가능한 스케줄로 받아들이는지 검사합니다.
//
// Describe는 스케줄러가 받아들이는 모든 표현식을 문구로 바꾸지는 못하며(예: "@daily", "MON-FRI"),
// 반대로 Describe가 문구를 만들었다고 해서 스케줄러가 받아들인다는 보장도 없습니다.
// 두 결과는 서로 독립적으로 보고됩니다.
func Validate(spec string) error {
	if len(spec) > maxExpressionLength {
		return fmt.Errorf("Cron 표현식 파싱 실패(length=%d): %w", len(spec), ErrExpressionTooLong)
	}

	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
