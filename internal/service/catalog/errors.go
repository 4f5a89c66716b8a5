package catalog

import (
	"fmt"

	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
)

// NewErrScheduleNotFound 등록되지 않은 스케줄 ID로 조회했을 때 반환하는 에러를 생성합니다.
func NewErrScheduleNotFound(id string) error {
	return apperrors.New(apperrors.NotFound, fmt.Sprintf("등록되지 않은 스케줄입니다 (ID=%s)", id))
}
