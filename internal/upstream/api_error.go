// Package upstream 调用方使用错误码目录的辅助代码：解析微信支付错误响应、归类、重试
package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wxpay-errcode-api/internal/errcode"
)

// ErrorDetail 微信支付错误详情
type ErrorDetail struct {
	Field    string `json:"field,omitempty"`
	Value    any    `json:"value,omitempty"`
	Issue    string `json:"issue,omitempty"`
	Location string `json:"location,omitempty"`
}

// APIError 微信支付 APIv3 错误响应
type APIError struct {
	StatusCode int               `json:"status_code"`
	Code       errcode.ErrorCode `json:"-"`
	RawCode    string            `json:"code"`
	Message    string            `json:"message"`
	Detail     *ErrorDetail      `json:"detail,omitempty"`

	decodeErr error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wechat pay error: status=%d, code=%s, message=%s", e.StatusCode, e.RawCode, e.Message)
}

// Unwrap 未收录的错误码返回 *errcode.UnknownCodeError
func (e *APIError) Unwrap() error {
	return e.decodeErr
}

// Known 错误码是否已收录
func (e *APIError) Known() bool {
	return e.decodeErr == nil
}

// Retryable 错误码说明中建议使用相同参数重新调用
func (e *APIError) Retryable() bool {
	if !e.Known() {
		return false
	}
	info, _ := errcode.Lookup(e.Code)
	return info.Retry
}

// ErrInvalidBody 错误响应无法解析
var ErrInvalidBody = errors.New("invalid wechat pay error body")

// ParseError 解析微信支付错误响应
//
// 仅在响应体不是合法 JSON 或缺少 code 时返回 error；
// 错误码未收录时仍返回 *APIError，Known() 为 false。
func ParseError(statusCode int, body []byte) (*APIError, error) {
	var resp struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Detail  *ErrorDetail `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if strings.TrimSpace(resp.Code) == "" {
		return nil, fmt.Errorf("%w: missing code", ErrInvalidBody)
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		RawCode:    resp.Code,
		Message:    resp.Message,
		Detail:     resp.Detail,
	}
	code, err := errcode.Decode(resp.Code)
	if err != nil {
		apiErr.decodeErr = err
		return apiErr, nil
	}
	apiErr.Code = code
	return apiErr, nil
}
