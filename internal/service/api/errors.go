package api

import (
	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
)

var (
	// ErrCatalogNotInitialized 서비스 시작 시 스케줄 카탈로그가 올바르게 주입되지 않았을 때 반환하는 에러입니다.
	ErrCatalogNotInitialized = apperrors.New(apperrors.Internal, "스케줄 카탈로그 객체가 초기화되지 않았습니다")
)
