package log

import (
	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	// PanicLevel 로그를 기록한 후 panic()을 호출합니다.
	PanicLevel Level = logrus.PanicLevel

	// FatalLevel 로그를 기록한 후 os.Exit(1)을 호출합니다.
	// 설정 파일 로드 실패처럼 프로세스가 더 이상 진행할 수 없을 때 사용합니다.
	FatalLevel Level = logrus.FatalLevel

	// ErrorLevel 프로세스는 유지되지만 관리자의 확인이 필요한 상태입니다.
	ErrorLevel Level = logrus.ErrorLevel

	// WarnLevel 잠재적인 문제가 있는 상태입니다. (예: 해석할 수 없는 스케줄 표현식)
	WarnLevel Level = logrus.WarnLevel

	// InfoLevel 서비스 시작/종료 등 정상적인 상태 변화를 기록합니다.
	InfoLevel Level = logrus.InfoLevel

	// DebugLevel 요청 단위의 상세 정보를 기록합니다.
	DebugLevel Level = logrus.DebugLevel

	// TraceLevel 가장 세밀한 정보입니다.
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	// Fields logrus.Fields의 별칭입니다.
	Fields = logrus.Fields

	// Entry logrus.Entry의 별칭입니다.
	Entry = logrus.Entry

	// Hook logrus.Hook의 별칭입니다.
	Hook = logrus.Hook

	// Logger logrus.Logger의 별칭입니다.
	Logger = logrus.Logger

	// Formatter logrus.Formatter의 별칭입니다.
	Formatter = logrus.Formatter

	// JSONFormatter logrus.JSONFormatter의 별칭입니다.
	JSONFormatter = logrus.JSONFormatter

	// TextFormatter logrus.TextFormatter의 별칭입니다.
	TextFormatter = logrus.TextFormatter
)
