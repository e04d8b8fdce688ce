package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:     {"操作成功", "Success"},
	CodeSystemError: {"系统错误", "System error"},
	CodeRedisError:  {"缓存服务错误", "Redis error"},

	// 参数错误
	CodeInvalidParams: {"参数格式错误", "Invalid parameters"},
	CodeMissingParams: {"缺少必要参数", "Missing parameters"},

	// 错误码查询
	CodeProviderCodeUnknown:  {"未收录的微信支付错误码", "Unknown WeChat Pay error code"},
	CodeProviderBodyInvalid:  {"微信支付错误响应无法解析", "Invalid WeChat Pay error body"},
	CodeProviderGroupInvalid: {"错误码分组不存在", "Unknown error code group"},

	// 上游错误
	CodeUpstreamError:               {"上游通道错误", "Upstream error"},
	CodeUpstreamRejected:            {"上游拒绝请求", "Upstream rejected"},
	CodeUpstreamBalanceInsufficient: {"上游余额不足", "Upstream balance insufficient"},
	CodeUpstreamInvalidAccount:      {"商户账户异常", "Merchant account invalid"},
	CodeUpstreamDataFormatError:     {"请求参数错误", "Upstream parameter error"},
	CodeUpstreamSignError:           {"签名验证失败", "Upstream signature error"},
	CodeUpstreamRateLimit:           {"请求频率超限", "Upstream rate limited"},
	CodeUpstreamRiskControl:         {"风控拦截", "Upstream risk control"},
	CodeUpstreamBankProcessing:      {"处理中，请稍后查询或重试", "Upstream processing"},
	CodeUpstreamDuplicateOrder:      {"订单重复", "Upstream duplicate order"},
}
