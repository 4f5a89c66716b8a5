package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/httputil"
	"github.com/darkkaiser/cronhuman/internal/service/api/v1/model/request"
	"github.com/darkkaiser/cronhuman/internal/service/api/v1/model/response"
	"github.com/darkkaiser/cronhuman/pkg/cronx"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// DescribeHandler godoc
// @Summary Cron 표현식 해석
// @Description Cron 표현식 하나를 사람이 읽을 수 있는 짧은 영문 문구로 변환합니다.
// @Description 해석할 수 없는 표현식은 에러가 아니며, 원본 표현식이 description에 그대로 담기고 describable이 false가 됩니다.
// @Description
// @Description ```bash
// @Description curl "http://localhost:2443/api/v1/describe?expr=0%209%20*%20*%201-5&verbose=true"
// @Description ```
// @Tags Describe
// @Produce json
// @Param expr query string true "Cron 표현식 (5개 또는 6개 필드)" example(0 9 * * 1-5)
// @Param verbose query bool false "장문 설명 포함 여부"
// @Success 200 {object} response.DescribeResult "해석 결과"
// @Failure 400 {object} response.ErrorResponse "expr 누락 또는 verbose 형식 오류"
// @Router /api/v1/describe [get]
func (h *Handler) DescribeHandler(c echo.Context) error {
	expr := c.QueryParam(constants.QueryParamExpr)
	if expr == "" {
		return httputil.NewBadRequestError(constants.ErrMsgExprRequired)
	}

	verbose := false
	if raw := c.QueryParam(constants.QueryParamVerbose); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return httputil.NewBadRequestError(constants.ErrMsgInvalidVerbose)
		}
		verbose = v
	}

	return c.JSON(http.StatusOK, describe(expr, verbose))
}

// DescribeBatchHandler godoc
// @Summary Cron 표현식 일괄 해석
// @Description 여러 Cron 표현식을 한 번에 해석합니다. 결과는 요청한 순서를 그대로 따릅니다.
// @Tags Describe
// @Accept json
// @Produce json
// @Param request body request.DescribeRequest true "해석할 표현식 목록"
// @Success 200 {object} response.DescribeBatchResponse "해석 결과 목록"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 필드 누락, 개수 초과, JSON 형식 오류 등)"
// @Failure 415 {object} response.ErrorResponse "지원하지 않는 Content-Type"
// @Router /api/v1/describe [post]
func (h *Handler) DescribeBatchHandler(c echo.Context) error {
	req := new(request.DescribeRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	if err := validateRequest(req); err != nil {
		return httputil.NewBadRequestError(formatValidationError(err))
	}

	if len(req.Expressions) > h.maxBatchSize {
		return httputil.NewBadRequestError(fmt.Sprintf("expressions는 최대 %d개까지 입력 가능합니다", h.maxBatchSize))
	}

	results := make([]response.DescribeResult, 0, len(req.Expressions))
	for _, expr := range req.Expressions {
		results = append(results, describe(expr, req.Verbose))
	}

	h.log(c).WithFields(applog.Fields{
		"count":   len(results),
		"verbose": req.Verbose,
	}).Debug(constants.LogMsgDescribeBatchAccepted)

	return c.JSON(http.StatusOK, response.DescribeBatchResponse{Results: results})
}

// describe 표현식 하나를 해석합니다. 해석하지 못하면 원본 표현식을 문구로 사용합니다.
func describe(expr string, verbose bool) response.DescribeResult {
	result := response.DescribeResult{
		Expression:  expr,
		Description: expr,
		Valid:       cronx.Validate(expr) == nil,
	}

	if phrase, err := cronx.TryDescribe(expr); err != nil {
		result.Reason = reasonOf(err)
	} else {
		result.Description = phrase
		result.Describable = true
	}

	if verbose {
		if explanation, err := cronx.Explain(expr); err == nil {
			result.Explanation = explanation
		}
	}

	return result
}

// reasonOf 해석 실패 원인을 응답용 코드로 변환합니다.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, cronx.ErrExpressionTooLong):
		return "too_long"
	case errors.Is(err, cronx.ErrFieldCount):
		return "field_count"
	case errors.Is(err, cronx.ErrInvalidField):
		return "invalid_field"
	case errors.Is(err, cronx.ErrNoMatchingPattern):
		return "no_matching_pattern"
	}
	return "unknown"
}
