package response

import "github.com/darkkaiser/cronhuman/internal/service/catalog"

// DescribeResult Cron 표현식 하나의 해석 결과
type DescribeResult struct {
	// Expression 요청된 원본 표현식
	Expression string `json:"expression" example:"0 9 * * 1-5"`

	// Description 사람이 읽을 수 있는 짧은 문구. 해석할 수 없으면 원본 표현식이 그대로 들어갑니다.
	Description string `json:"description" example:"Weekdays at 9 AM"`

	// Describable 짧은 문구로 해석되었는지 여부
	Describable bool `json:"describable" example:"true"`

	// Reason 해석하지 못한 이유: too_long, field_count, invalid_field, no_matching_pattern
	Reason string `json:"reason,omitempty" example:""`

	// Valid Cron 스케줄러가 실행할 수 있는 표현식인지 여부
	Valid bool `json:"valid" example:"true"`

	// Explanation verbose 요청 시 모든 필드를 풀어 쓴 장문 설명
	Explanation string `json:"explanation,omitempty" example:"At 09:00 AM, Monday through Friday"`
}

// DescribeBatchResponse 일괄 해석 응답
type DescribeBatchResponse struct {
	Results []DescribeResult `json:"results"`
}

// ScheduleListResponse 등록된 스케줄 목록 응답
type ScheduleListResponse struct {
	Count     int             `json:"count" example:"1"`
	Schedules []catalog.Entry `json:"schedules"`
}
