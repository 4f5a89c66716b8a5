package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// getValidator 요청 검증용 validator를 반환합니다. 최초 호출 시 한 번만 생성합니다.
var getValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 korean 태그의 이름을 필드명으로 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("korean"); name != "" {
			return name
		}
		return fld.Name
	})

	return v
})

// validateRequest 구조체의 validate 태그를 기반으로 검증합니다.
func validateRequest(req any) error {
	return getValidator().Struct(req)
}

// formatValidationError 검증 에러를 사용자 친화적인 한국어 메시지로 변환합니다.
// 여러 검증 에러가 있으면 첫 번째 에러만 사용합니다.
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	name := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", name)
	case "min":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s개 이상이어야 합니다", name, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s개까지 입력 가능합니다", name, fe.Param())
	}
	return fmt.Sprintf("%s 검증 실패: %s", name, fe.Tag())
}
