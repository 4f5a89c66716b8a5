package cronx

import (
	"fmt"
	"strings"
)

// rule 분류 규칙 하나를 정의합니다. match가 true를 반환하면 해당 문구가 최종 결과가 됩니다.
type rule struct {
	name  string
	match func(s *Schedule) (string, bool)
}

// rules 위에서부터 순서대로 평가되며 가장 먼저 일치한 규칙이 결과를 결정합니다.
//
// 순서 자체가 동작의 일부입니다. 뒤쪽의 일반적인 규칙이 앞쪽의 구체적인 규칙을 가리지 않도록
// 배치되어 있으므로, 순서를 바꾸면 여러 규칙을 동시에 만족하는 표현식의 결과가 달라집니다.
var rules = []rule{
	{name: "every-n-seconds", match: matchEverySeconds},
	{name: "every-n-minutes", match: matchEveryMinutes},
	{name: "every-n-hours", match: matchEveryHours},
	{name: "hourly", match: matchHourly},
	{name: "hourly-within-range", match: matchHourlyWithinRange},
	{name: "multiple-times-daily", match: matchMultipleTimesDaily},
	{name: "time-of-day", match: matchTimeOfDay},
	{name: "step-minutes-within-hours", match: matchStepMinutesWithinHours},
	{name: "every-n-days", match: matchEveryDays},
	{name: "weekday-hourly-range", match: matchWeekdayHourlyRange},
	{name: "midnight-or-noon", match: matchMidnightOrNoon},
	{name: "weekly", match: matchWeekly},
}

// classify 규칙 테이블을 평가하여 첫 번째로 일치한 규칙의 문구를 반환합니다.
func classify(s *Schedule) (string, bool) {
	for _, r := range rules {
		if phrase, ok := r.match(s); ok {
			return phrase, true
		}
	}
	return "", false
}

func matchEverySeconds(s *Schedule) (string, bool) {
	if s.Second.Kind != KindStep {
		return "", false
	}
	if s.Second.Step == 1 {
		return "Every second", true
	}
	return fmt.Sprintf("Every %d seconds", s.Second.Step), true
}

func matchEveryMinutes(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindStep || s.Hour.Kind != KindAll || s.DayOfMonth.Kind != KindAll {
		return "", false
	}

	if s.Minute.Step == 1 {
		return "Every minute", true
	}
	return fmt.Sprintf("Every %d minutes", s.Minute.Step), true
}

func matchEveryHours(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindStep || s.DayOfMonth.Kind != KindAll {
		return "", false
	}

	at := formatMinuteSuffix(s.Minute.Primary)
	switch s.Hour.Step {
	case 1:
		return "Every hour" + at, true
	case 12:
		return "Twice daily" + at, true
	}
	return fmt.Sprintf("Every %d hours%s", s.Hour.Step, at), true
}

func matchHourly(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindAll || s.DayOfMonth.Kind != KindAll || s.Weekday.Kind != KindAll {
		return "", false
	}

	if s.Minute.Primary == 0 {
		return "Every hour, on the hour", true
	}
	return fmt.Sprintf("Hourly at :%02d", s.Minute.Primary), true
}

func matchHourlyWithinRange(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindRange || s.DayOfMonth.Kind != KindAll {
		return "", false
	}
	return "Hourly, " + formatHourSpan(s.Hour.Values) + formatMinuteSuffix(s.Minute.Primary), true
}

func matchMultipleTimesDaily(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindList || s.DayOfMonth.Kind != KindAll || s.Weekday.Kind != KindAll {
		return "", false
	}

	times := make([]string, 0, len(s.Hour.Values))
	for _, h := range s.Hour.Values {
		times = append(times, formatTime(h, s.Minute.Primary))
	}

	switch len(times) {
	case 2:
		return "Twice daily at " + times[0] + " and " + times[1], true
	case 3:
		return "3 times daily at " + strings.Join(times, ", "), true
	}
	return fmt.Sprintf("%d times daily", len(times)), true
}

// matchTimeOfDay 분과 시가 모두 단일 값인 경우의 하위 분기를 순서대로 평가합니다.
// 어느 하위 분기에도 해당하지 않으면 다음 규칙으로 넘어갑니다.
func matchTimeOfDay(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindValue {
		return "", false
	}

	t := formatTime(s.Hour.Primary, s.Minute.Primary)
	day, month, weekday := s.DayOfMonth.Kind, s.Month.Kind, s.Weekday.Kind

	// 매일
	if day == KindAll && weekday == KindAll && month == KindAll {
		return "Daily at " + t, true
	}

	// 매주 (특정 요일)
	if day == KindAll && weekday != KindAll && month == KindAll {
		if weekdays, ok := describeWeekdays(s.Weekday); ok {
			return weekdays + " at " + t, true
		}
	}

	// 매월 (하나 또는 여러 날짜)
	if (day == KindValue || day == KindList) && weekday == KindAll && month == KindAll {
		days, _ := describeDayOfMonth(s.DayOfMonth)
		return "Monthly " + days + " at " + t, true
	}

	// 매년
	if day == KindValue && month == KindValue {
		return fmt.Sprintf("Yearly on %s %s at %s", monthNames[s.Month.Primary-1], ordinal(s.DayOfMonth.Primary), t), true
	}

	// 특정 월의 특정 요일
	if weekday != KindAll && month != KindAll {
		if weekdays, ok := describeWeekdays(s.Weekday); ok {
			return joinPhrase(weekdays+" at "+t, s.Month), true
		}
	}

	// 특정 월의 특정 날짜
	if day != KindAll && month != KindAll && weekday == KindAll {
		days, _ := describeDayOfMonth(s.DayOfMonth)
		return joinPhrase(days+" at "+t, s.Month), true
	}

	return "", false
}

// joinPhrase 월 표현이 있으면 공백으로 이어 붙입니다.
func joinPhrase(phrase string, month Field) string {
	if months, ok := describeMonths(month); ok {
		return phrase + " " + months
	}
	return phrase
}

func matchStepMinutesWithinHours(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindStep {
		return "", false
	}

	switch s.Hour.Kind {
	case KindRange:
		return fmt.Sprintf("Every %d min, %s", s.Minute.Step, formatHourSpan(s.Hour.Values)), true
	case KindList:
		return fmt.Sprintf("Every %d min at %s", s.Minute.Step, formatTimeRange(s.Hour.Values)), true
	}
	return "", false
}

func matchEveryDays(s *Schedule) (string, bool) {
	if s.DayOfMonth.Kind != KindStep || s.Minute.Kind != KindValue || s.Hour.Kind != KindValue {
		return "", false
	}

	t := formatTime(s.Hour.Primary, s.Minute.Primary)
	if s.DayOfMonth.Step == 2 {
		return "Every other day at " + t, true
	}
	return fmt.Sprintf("Every %d days at %s", s.DayOfMonth.Step, t), true
}

func matchWeekdayHourlyRange(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindRange {
		return "", false
	}

	weekdays, ok := describeWeekdays(s.Weekday)
	if !ok {
		return "", false
	}
	return weekdays + ", hourly " + formatHourSpan(s.Hour.Values), true
}

// matchMidnightOrNoon 파싱된 숫자가 아닌 원본 토큰을 비교합니다.
// "00"처럼 같은 값을 다르게 쓴 표현식은 이 규칙에 해당하지 않습니다.
func matchMidnightOrNoon(s *Schedule) (string, bool) {
	if s.Minute.Raw != "0" || s.DayOfMonth.Kind != KindAll || s.Weekday.Kind != KindAll {
		return "", false
	}

	switch s.Hour.Raw {
	case "0":
		return "Daily at midnight", true
	case "12":
		return "Daily at noon", true
	}
	return "", false
}

// matchWeekly 요일 하나와 시각이 지정된 스케줄을 "Weekly on <요일>" 문구로 표현합니다.
//
// 이 규칙이 받아들이는 입력은 모두 time-of-day 규칙의 요일 분기가 먼저 처리하므로 현재 순서에서는 선택되지 않습니다.
// 규칙 순서를 바꾸거나 describeWeekdays가 단일 요일을 거부하게 되면 이 규칙이 결과를 결정합니다.
func matchWeekly(s *Schedule) (string, bool) {
	if s.Minute.Kind != KindValue || s.Hour.Kind != KindValue || s.DayOfMonth.Kind != KindAll || s.Weekday.Kind != KindValue {
		return "", false
	}
	return fmt.Sprintf("Weekly on %s at %s", dayNames[s.Weekday.Primary], formatTime(s.Hour.Primary, s.Minute.Primary)), true
}
