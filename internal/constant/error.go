package constant

import "fmt"

// Error 错误接口
type Error interface {
	error
	Code() int
	Message() string
	Data() interface{}
	WithData(data interface{}) Error
	Unwrap() error
}

// CustomError 自定义错误实现
type CustomError struct {
	code    int
	message string
	data    interface{}
	cause   error
}

func (e *CustomError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code: %d, message: %s, cause: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) Data() interface{} {
	return e.data
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// NewError 创建错误
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.CN}
	}
	return &CustomError{code: code, message: "未知错误"}
}

// WrapError 创建错误并保留原始错误，便于 errors.Is / errors.As
func WrapError(code int, cause error) Error {
	e := NewError(code).(*CustomError)
	e.cause = cause
	return e
}

// GetErrorInfo 获取错误信息
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}
