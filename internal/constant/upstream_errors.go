package constant

// 上游通道错误码 (3xxx) - 微信支付返回的错误码按处理方式归类到这里
const (
	// CodeUpstreamError 上游通用错误
	// 适用场景：未收录的错误码、系统错误、业务错误
	// 示例：SYSTEM_ERROR、ERROR、TRADE_ERROR
	CodeUpstreamError = 3000

	// CodeUpstreamRejected 上游拒绝请求
	// 适用场景：订单或资源状态不允许当前操作
	// 示例：ORDER_CLOSED、ORDER_NOT_EXIST、USER_NOT_EXISTS
	CodeUpstreamRejected = 3002

	// CodeUpstreamBalanceInsufficient 上游余额不足
	// 示例：NOT_ENOUGH
	CodeUpstreamBalanceInsufficient = 3003

	// CodeUpstreamInvalidAccount 商户账户异常
	// 适用场景：商户号、appid 或权限配置有误
	// 示例：APPID_MCHID_NOT_MATCH、MCH_NOT_EXISTS、NO_AUTH
	CodeUpstreamInvalidAccount = 3004

	// CodeUpstreamDataFormatError 请求参数错误
	// 示例：PARAM_ERROR、INVALID_REQUEST、INVALID_TRANSACTIONID
	CodeUpstreamDataFormatError = 3006

	// CodeUpstreamSignError 签名错误
	// 示例：SIGN_ERROR
	CodeUpstreamSignError = 3007

	// CodeUpstreamRateLimit 频率限制
	// 示例：FREQUENCY_LIMITED、RATELIMIT_EXCEEDED、RULE_LIMIT
	CodeUpstreamRateLimit = 3008

	// CodeUpstreamRiskControl 风控拦截
	// 示例：REQUEST_BLOCKED、USER_ACCOUNT_ABNORMAL
	CodeUpstreamRiskControl = 3010

	// CodeUpstreamBankProcessing 处理中，结果未知
	// 适用场景：需要稍后查询或使用相同参数重试
	// 示例：BANK_ERROR、USERPAYING、BIZERR_NEED_RETRY、STATEMENT_CREATING
	CodeUpstreamBankProcessing = 3013

	// CodeUpstreamDuplicateOrder 订单重复
	// 示例：OUT_TRADE_NO_USED、ORDER_PAID、ALREADY_EXISTS
	CodeUpstreamDuplicateOrder = 3014
)
