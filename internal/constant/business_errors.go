package constant

// 业务级错误码 (2xxx)

// 微信支付错误码查询相关
const (
	CodeProviderCodeUnknown  = 2930 // 未收录的微信支付错误码，已记录待人工补充
	CodeProviderBodyInvalid  = 2931 // 微信支付错误响应格式错误，无法解析
	CodeProviderGroupInvalid = 2932 // 错误码分组不存在，可选 common / order / refund
)
