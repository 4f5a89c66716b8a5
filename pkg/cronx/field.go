package cronx

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// maxFieldLength 단일 필드 문자열의 최대 길이(바이트)
	maxFieldLength = 128

	// maxExpandedValues 범위/목록 필드를 전개했을 때 허용되는 최대 값의 개수
	// 윤년 기준 1년의 일수와 같으며, 어떤 필드 도메인도 이 값을 넘지 않습니다.
	maxExpandedValues = 366
)

// ErrInvalidField 필드 문자열이 문법 또는 값의 범위를 위반했을 때 반환되는 에러입니다.
var ErrInvalidField = errors.New("cronx: invalid field")

// Kind 파싱된 필드의 형태를 나타냅니다.
type Kind int

const (
	// KindAll 와일드카드(*)
	KindAll Kind = iota

	// KindValue 단일 값 (예: 5)
	KindValue

	// KindStep 간격 (예: */15)
	KindStep

	// KindRange 범위 (예: 1-5)
	KindRange

	// KindList 쉼표로 구분된 목록 (예: 1,3,5 또는 1-3,7)
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindValue:
		return "value"
	case KindStep:
		return "step"
	case KindRange:
		return "range"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Field Cron 표현식을 구성하는 하나의 필드를 파싱한 결과입니다.
//
// 불변 조건:
//   - Values는 Kind가 KindRange 또는 KindList인 경우에만 존재하며, 오름차순으로 정렬되어 있습니다.
//   - Step은 Kind가 KindStep인 경우에만 0보다 큽니다.
//   - 모든 값은 정규화(요일 7 -> 0) 이후 필드의 도메인 안에 있습니다.
type Field struct {
	Kind    Kind
	Primary int    // 대표 값 (All/Step: 도메인 최솟값, Value: 그 값, Range/List: 첫 번째 값)
	Step    int    // 간격 (KindStep 전용)
	Values  []int  // 전개된 값 목록 (KindRange/KindList 전용)
	Raw     string // 원본 필드 문자열
}

// domain 필드가 가질 수 있는 값의 범위와 정규화 규칙을 정의합니다.
type domain struct {
	name      string
	min       int
	max       int
	normalize func(int) int
}

func identity(v int) int { return v }

// normalizeWeekday 일요일을 의미하는 7을 0으로 변환합니다.
func normalizeWeekday(v int) int {
	if v == 7 {
		return 0
	}
	return v
}

var (
	secondDomain  = domain{name: "second", min: 0, max: 59, normalize: identity}
	minuteDomain  = domain{name: "minute", min: 0, max: 59, normalize: identity}
	hourDomain    = domain{name: "hour", min: 0, max: 23, normalize: identity}
	dayDomain     = domain{name: "day-of-month", min: 1, max: 31, normalize: identity}
	monthDomain   = domain{name: "month", min: 1, max: 12, normalize: identity}
	weekdayDomain = domain{name: "weekday", min: 0, max: 6, normalize: normalizeWeekday}
)

func (d domain) contains(v int) bool {
	return v >= d.min && v <= d.max
}

func (d domain) invalid(raw, reason string) error {
	return fmt.Errorf("%w: %s 필드 %q (%s)", ErrInvalidField, d.name, raw, reason)
}

// parseField 필드 문자열 하나를 도메인에 맞추어 파싱합니다.
//
// 문법은 다음 순서로 판별되며 서로 배타적입니다:
//
//	"*"       -> KindAll
//	"*/n"     -> KindStep (0 < n <= 도메인 크기)
//	"a,b-c"   -> KindList
//	"a-b"     -> KindRange
//	"a"       -> KindValue
func parseField(raw string, d domain) (Field, error) {
	if raw == "" {
		return Field{}, d.invalid(raw, "빈 필드")
	}
	if len(raw) > maxFieldLength {
		return Field{}, d.invalid(raw[:16]+"...", "필드 길이 초과")
	}

	if raw == "*" {
		return Field{Kind: KindAll, Primary: d.min, Raw: raw}, nil
	}

	if stepToken, ok := strings.CutPrefix(raw, "*/"); ok {
		step, ok := parseNumber(stepToken)
		if !ok || step <= 0 || step > d.max-d.min+1 {
			return Field{}, d.invalid(raw, "잘못된 간격")
		}
		return Field{Kind: KindStep, Primary: d.min, Step: step, Raw: raw}, nil
	}

	if strings.Contains(raw, ",") {
		values := make([]int, 0, 8)
		for _, part := range strings.Split(raw, ",") {
			if part == "" {
				return Field{}, d.invalid(raw, "빈 목록 항목")
			}

			if strings.Contains(part, "-") {
				start, end, err := parseBounds(part, d)
				if err != nil {
					return Field{}, err
				}
				if values, err = expandRange(values, start, end, d); err != nil {
					return Field{}, err
				}
				continue
			}

			n, ok := parseNumber(part)
			if !ok {
				return Field{}, d.invalid(part, "숫자가 아님")
			}
			v := d.normalize(n)
			if !d.contains(v) {
				return Field{}, d.invalid(part, "범위를 벗어남")
			}
			if len(values) >= maxExpandedValues {
				return Field{}, d.invalid(raw, "전개 가능한 값의 개수 초과")
			}
			values = append(values, v)
		}

		slices.Sort(values)
		return Field{Kind: KindList, Primary: values[0], Values: values, Raw: raw}, nil
	}

	if strings.Contains(raw, "-") {
		start, end, err := parseBounds(raw, d)
		if err != nil {
			return Field{}, err
		}
		values, err := expandRange(nil, start, end, d)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: KindRange, Primary: values[0], Values: values, Raw: raw}, nil
	}

	n, ok := parseNumber(raw)
	if !ok {
		return Field{}, d.invalid(raw, "숫자가 아님")
	}
	v := d.normalize(n)
	if !d.contains(v) {
		return Field{}, d.invalid(raw, "범위를 벗어남")
	}

	return Field{Kind: KindValue, Primary: v, Raw: raw}, nil
}

// parseBounds "a-b" 형태의 토큰을 정규화된 시작/끝 값으로 분리합니다.
func parseBounds(token string, d domain) (int, int, error) {
	startToken, endToken, _ := strings.Cut(token, "-")
	start, ok1 := parseNumber(startToken)
	end, ok2 := parseNumber(endToken)
	if !ok1 || !ok2 {
		return 0, 0, d.invalid(token, "잘못된 범위")
	}
	return d.normalize(start), d.normalize(end), nil
}

// expandRange start부터 end까지의 값을 bucket에 추가합니다.
//
// 역순 범위, 도메인을 벗어난 끝 값, 366개 이상의 폭을 가진 범위는 값을 할당하기 전에 거부되며,
// bucket의 누적 크기 역시 maxExpandedValues를 넘지 않습니다.
func expandRange(bucket []int, start, end int, d domain) ([]int, error) {
	if start > end {
		return nil, d.invalid(fmt.Sprintf("%d-%d", start, end), "역순 범위")
	}
	if !d.contains(start) || !d.contains(end) {
		return nil, d.invalid(fmt.Sprintf("%d-%d", start, end), "범위를 벗어남")
	}
	if end-start >= maxExpandedValues {
		return nil, d.invalid(fmt.Sprintf("%d-%d", start, end), "전개 가능한 값의 개수 초과")
	}

	for v := start; v <= end; v++ {
		if len(bucket) >= maxExpandedValues {
			return nil, d.invalid(fmt.Sprintf("%d-%d", start, end), "전개 가능한 값의 개수 초과")
		}
		bucket = append(bucket, v)
	}

	return bucket, nil
}

// parseNumber 10진수 숫자로만 이루어진 토큰을 정수로 변환합니다.
// 부호, 공백, 16진수 접두어 등은 모두 거부합니다.
func parseNumber(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}
