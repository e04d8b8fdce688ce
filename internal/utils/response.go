package utils

import (
	"errors"

	"wxpay-errcode-api/internal/constant"
)

// 统一响应格式（支持中英文提示）
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`              // 中文描述
	MsgEN   string      `json:"msg_en,omitempty"` // 英文描述
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// 成功响应
func Success(data interface{}) Response {
	return Response{
		Code:  constant.CodeSuccess,
		Msg:   "成功",
		MsgEN: "Success",
		Data:  data,
	}
}

// 错误响应（自动从 constant 中获取中英文描述）
func Error(code int) Response {
	return ErrorWithData(code, nil)
}

// 带数据的错误响应
func ErrorWithData(code int, data interface{}) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{
			Code:  code,
			Msg:   info.CN,
			MsgEN: info.EN,
			Data:  data,
		}
	}
	return Response{
		Code:  code,
		Msg:   "未知错误",
		MsgEN: "Unknown error",
		Data:  data,
	}
}

// FromError constant.Error 按其错误码响应，其他错误按系统错误处理
func FromError(err error) Response {
	var ce constant.Error
	if errors.As(err, &ce) {
		return ErrorWithData(ce.Code(), ce.Data())
	}
	return Error(constant.CodeSystemError)
}

// WithTrace 附带 TraceID
func (r Response) WithTrace(traceID string) Response {
	r.TraceID = traceID
	return r
}
