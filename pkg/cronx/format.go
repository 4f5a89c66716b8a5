package cronx

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	dayNames        = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	dayShortNames   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthNames      = [...]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	monthShortNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	weekdaySet = []int{1, 2, 3, 4, 5}
	weekendSet = []int{0, 6}
)

// formatTime 시/분을 12시간제 문자열로 변환합니다. 분이 0이면 생략합니다.
// 예: (0, 0) -> "12 AM", (8, 30) -> "8:30 AM", (13, 5) -> "1:05 PM"
func formatTime(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}

	if minute == 0 {
		return fmt.Sprintf("%d %s", h, period)
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// formatMinuteSuffix 정각이 아닌 경우 " at :MM" 접미사를 반환합니다.
func formatMinuteSuffix(minute int) string {
	if minute == 0 {
		return ""
	}
	return fmt.Sprintf(" at :%02d", minute)
}

// formatHourSpan 시간 범위의 처음과 끝을 "H1 - H2" 형태로 표현합니다.
func formatHourSpan(hours []int) string {
	return formatTime(hours[0], 0) + " - " + formatTime(hours[len(hours)-1], 0)
}

// formatTimeRange 시간 목록을 표현합니다.
// 3개 이상의 연속된 시간은 "H1 - H2"로 압축하고, 그 외에는 쉼표로 나열합니다.
func formatTimeRange(hours []int) string {
	switch len(hours) {
	case 0:
		return ""
	case 1:
		return formatTime(hours[0], 0)
	}

	sorted := slices.Clone(hours)
	slices.Sort(sorted)

	consecutive := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive && len(sorted) > 2 {
		return formatHourSpan(sorted)
	}

	times := make([]string, 0, len(hours))
	for _, h := range hours {
		times = append(times, formatTime(h, 0))
	}
	return strings.Join(times, ", ")
}

// ordinal 서수 접미사(st, nd, rd, th)를 붙입니다. 11~13은 항상 th를 사용합니다.
func ordinal(n int) string {
	suffix := "th"
	if v := n % 100; v < 11 || v > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// describeWeekdays 요일 필드를 표현합니다.
// 월~금은 "Weekdays", 토/일은 "Weekends"로 표현하며, Range와 List 어느 쪽으로 주어져도 동일합니다.
// 와일드카드나 간격처럼 표현할 수 없는 경우 false를 반환합니다.
func describeWeekdays(f Field) (string, bool) {
	switch f.Kind {
	case KindValue:
		return dayNames[f.Primary] + "s", true

	case KindRange, KindList:
		switch {
		case slices.Equal(f.Values, weekdaySet):
			return "Weekdays", true
		case slices.Equal(f.Values, weekendSet):
			return "Weekends", true
		}

		if f.Kind == KindRange {
			return dayShortNames[f.Values[0]] + " - " + dayShortNames[f.Values[len(f.Values)-1]], true
		}

		names := make([]string, 0, len(f.Values))
		for _, d := range f.Values {
			names = append(names, dayShortNames[d])
		}
		return strings.Join(names, ", "), true
	}

	return "", false
}

// describeMonths 월 필드를 표현합니다. 12개월 전체가 지정된 경우에는 표현을 생략(false)합니다.
func describeMonths(f Field) (string, bool) {
	switch f.Kind {
	case KindValue:
		return "in " + monthNames[f.Primary-1], true

	case KindList:
		if len(f.Values) == 12 {
			return "", false
		}
		names := make([]string, 0, len(f.Values))
		for _, m := range f.Values {
			names = append(names, monthShortNames[m-1])
		}
		return "in " + strings.Join(names, ", "), true

	case KindRange:
		if len(f.Values) == 12 {
			return "", false
		}
		return monthShortNames[f.Values[0]-1] + " - " + monthShortNames[f.Values[len(f.Values)-1]-1], true

	case KindStep:
		return fmt.Sprintf("every %d months", f.Step), true
	}

	return "", false
}

// describeDayOfMonth 일(Day of Month) 필드를 표현합니다.
// 3개 이하의 날짜는 서수로 나열하고, 그보다 많으면 "on N days"로 요약합니다.
func describeDayOfMonth(f Field) (string, bool) {
	switch f.Kind {
	case KindValue:
		return "on the " + ordinal(f.Primary), true

	case KindList:
		if len(f.Values) <= 3 {
			days := make([]string, 0, len(f.Values))
			for _, d := range f.Values {
				days = append(days, ordinal(d))
			}
			return "on the " + strings.Join(days, ", "), true
		}
		return fmt.Sprintf("on %d days", len(f.Values)), true

	case KindRange:
		return "on the " + ordinal(f.Values[0]) + " - " + ordinal(f.Values[len(f.Values)-1]), true

	case KindStep:
		return fmt.Sprintf("every %d days", f.Step), true
	}

	return "", false
}
