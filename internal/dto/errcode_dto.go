package dto

// ListErrorCodeReq 错误码列表查询参数
type ListErrorCodeReq struct {
	Group string `form:"group" binding:"omitempty,oneof=common order refund"`
}

// DecodeReq 错误响应解析参数，Status 为微信支付返回的 HTTP 状态码
type DecodeReq struct {
	Status int `form:"status" binding:"omitempty,min=100,max=599"`
}

// ErrorCodeVo 错误码查询结果
type ErrorCodeVo struct {
	Code     string `json:"code"`     // 微信支付原始错误码
	Group    string `json:"group"`    // common / order / refund
	Label    string `json:"label"`    // 错误描述
	Action   string `json:"action"`   // 解决方案
	Retry    bool   `json:"retry"`    // 建议使用相同参数重新调用
	Category int    `json:"category"` // 内部上游错误码
}

// ErrorDetailVo 微信支付返回的错误详情
type ErrorDetailVo struct {
	Field    string `json:"field,omitempty"`
	Value    any    `json:"value,omitempty"`
	Issue    string `json:"issue,omitempty"`
	Location string `json:"location,omitempty"`
}

// DecodeResultVo 错误响应解析结果
type DecodeResultVo struct {
	StatusCode int            `json:"statusCode"`
	Known      bool           `json:"known"`
	Message    string         `json:"message"`
	Detail     *ErrorDetailVo `json:"detail,omitempty"`
	ErrorCodeVo
}

// UnknownCodeVo 待补充的错误码
type UnknownCodeVo struct {
	Code       string `json:"code"`
	Count      int64  `json:"count"`
	LastSeenAt int64  `json:"lastSeenAt"`
	Source     string `json:"source,omitempty"`
}

// UnknownCodeMQ 未收录错误码事件
type UnknownCodeMQ struct {
	EventID int64  `json:"event_id"`
	Code    string `json:"code"`
	Source  string `json:"source"`
	SeenAt  int64  `json:"seen_at"`
}
