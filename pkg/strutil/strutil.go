// Package strutil 문자열 처리를 위한 유틸리티 함수를 제공합니다.
package strutil

// Mask 민감한 값을 로그에 남길 수 있도록 일부만 남기고 가립니다.
//
//	""                    -> ""
//	"abc"                 -> "***"
//	"secret123"           -> "secr***"
//	"abcdefghijklmnopqr"  -> "abcd***opqr"
func Mask(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	switch {
	case len(r) <= 3:
		return "***"
	case len(r) <= 12:
		return string(r[:4]) + "***"
	}
	return string(r[:4]) + "***" + string(r[len(r)-4:])
}
