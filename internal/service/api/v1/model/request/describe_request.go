package request

// DescribeRequest 여러 Cron 표현식의 일괄 해석 요청
type DescribeRequest struct {
	// Expressions 해석할 Cron 표현식 목록
	Expressions []string `json:"expressions" validate:"required,min=1,dive,max=1000" korean:"expressions" example:"0 */5 * * * *,0 9 * * 1-5"`

	// Verbose true이면 모든 필드를 풀어 쓴 장문 설명을 함께 반환합니다.
	Verbose bool `json:"verbose" example:"false"`
}
