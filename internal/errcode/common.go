package errcode

// Common 公共错误码
// https://pay.weixin.qq.com/wiki/doc/apiv3/Share/error_code.shtml
type Common string

// ParseCommon 仅在公共错误码中查找
func ParseCommon(token string) (Common, bool) {
	if _, ok := commonCodes[Common(token)]; !ok {
		return "", false
	}
	return Common(token), true
}

// Code 转为 ErrorCode
func (c Common) Code() ErrorCode {
	return ErrorCode{Group: GroupCommon, Token: string(c)}
}

const (
	CommonAppidMchidNotMatch    Common = "APPID_MCHID_NOT_MATCH"   // 商户号与 appid 不匹配
	CommonBankError             Common = "BANK_ERROR"              // 银行系统异常
	CommonOutTradeNoUsed        Common = "OUT_TRADE_NO_USED"       // 商户订单号重复
	CommonRequestBlocked        Common = "REQUEST_BLOCKED"         // 请求受阻
	CommonBizErrNeedRetry       Common = "BIZERR_NEED_RETRY"       // 退款业务流程错误，按文档写法，不是 BIZ_ERR_NEED_RETRY
	CommonUserPaying            Common = "USERPAYING"              // 用户支付中，需要输入密码
	CommonParamError            Common = "PARAM_ERROR"             // 参数错误
	CommonOrderNotExist         Common = "ORDER_NOT_EXIST"         // 请求的资源不存在
	CommonContractNotExist      Common = "CONTRACT_NOT_EXIST"      // 签约协议不存在
	CommonPhoneNotExist         Common = "PHONE_NOT_EXIST"         // 手机号不存在
	CommonSignError             Common = "SIGN_ERROR"              // 签名验证失败
	CommonAccountError          Common = "ACCOUNT_ERROR"           // 账号异常
	CommonSystemError           Common = "SYSTEM_ERROR"            // 系统错误
	CommonAuthCodeInvalid       Common = "AUTH_CODE_INVALID"       // 收银员扫描的不是微信支付的条码
	CommonFrequencyLimited      Common = "FREQUENCY_LIMITED"       // 频率超限
	CommonRatelimitExceeded     Common = "RATELIMIT_EXCEEDED"      // 频率限制
	CommonNoAuth                Common = "NO_AUTH"                 // 商户暂无权限使用此功能
	CommonRuleLimit             Common = "RULE_LIMIT"              // 业务规则限制
	CommonAuthCodeExpire        Common = "AUTH_CODE_EXPIRE"        // 用户的条码已经过期
	CommonTradeError            Common = "TRADE_ERROR"             // 交易错误
	CommonUserNotExist          Common = "USER_NOT_EXIST"          // 用户账户注销
	CommonError                 Common = "ERROR"                   // 业务错误
	CommonFrequencyLimitExceed  Common = "FREQUENCY_LIMIT_EXCEED"  // 接口限频
	CommonContractExisted       Common = "CONTRACT_EXISTED"        // 协议已存在
	CommonUserAccountAbnormal   Common = "USER_ACCOUNT_ABNORMAL"   // 用户账户异常
	CommonContractError         Common = "CONTRACT_ERROR"          // 当前用户签约状态失效
	CommonRefundNotExists       Common = "REFUND_NOT_EXISTS"       // 订单号错误或订单状态不正确
	CommonContractNotConfirmed  Common = "CONTRACT_NOT_CONFIRMED"  // 二级商户未开启手动提现权限
	CommonNoStatementExist      Common = "NO_STATEMENT_EXIST"      // 账单文件不存在
	CommonStatementCreating     Common = "STATEMENT_CREATING"      // 账单生成中
	CommonMchNotExists          Common = "MCH_NOT_EXISTS"          // 商户号不存在
	CommonInvalidRequest        Common = "INVALID_REQUEST"         // 请求参数符合参数格式，但不符合业务规则
	CommonResourceNotExists     Common = "RESOURCE_NOT_EXISTS"     // 查询的资源不存在
	CommonResourceAlreadyExists Common = "RESOURCE_ALREADY_EXISTS" // 用户已签约该商户，不可重复签约
	CommonAlreadyExists         Common = "ALREADY_EXISTS"          // 资源已存在
	CommonUserNotRegistered     Common = "USER_NOT_REGISTERED"     // 服务未开通或账号未注册
	CommonUserNotExists         Common = "USER_NOT_EXISTS"         // openid 不正确
	CommonOrderClosed           Common = "ORDER_CLOSED"            // 订单已关闭
	CommonOrderPaid             Common = "ORDER_PAID"              // 订单已支付
	CommonOrderReversed         Common = "ORDER_REVERSED"          // 订单已撤销
	CommonOrderclosed           Common = "ORDERCLOSED"             // 订单已关闭（商户订单号异常）
	CommonOrderpaid             Common = "ORDERPAID"               // 订单已支付
	CommonOrderreversed         Common = "ORDERREVERSED"           // 订单已撤销
	CommonAccountNotVerified    Common = "ACCOUNT_NOT_VERIFIED"    // 二级商户下行打款未成功
	CommonNotFound              Common = "NOT_FOUND"               // 请求的资源不存在
)

var commonCodes = map[Common]Info{
	CommonAppidMchidNotMatch:    {Label: "商户号与 appid 不匹配", Action: "请绑定调用接口的商户号和APPID后重试"},
	CommonBankError:             {Label: "银行系统异常", Action: "银行系统异常，请用相同参数重新调用", Retry: true},
	CommonOutTradeNoUsed:        {Label: "商户订单号重复", Action: "请核实商户订单号是否重复提交"},
	CommonRequestBlocked:        {Label: "请求受阻", Action: "此状态代表退款申请失败，商户可根据具体的错误提示做相应的处理"},
	CommonBizErrNeedRetry:       {Label: "退款业务流程错误", Action: "请不要更换商户退款单号，请使用相同参数再次调用 API", Retry: true},
	CommonUserPaying:            {Label: "用户支付中，需要输入密码", Action: "等待5秒，然后调用被扫订单结果查询 API，查询当前订单的不同状态，决定下一步的操作"},
	CommonParamError:            {Label: "参数错误", Action: "根据错误提示，传入正确参数"},
	CommonOrderNotExist:         {Label: "请求的资源不存在", Action: "请商户检查需要查询的 id 或者请求 URL 是否正确"},
	CommonContractNotExist:      {Label: "签约协议不存在", Action: "请检查签约协议号是否正确，是否已解约"},
	CommonPhoneNotExist:         {Label: "手机号不存在", Action: "请检查手机号码是否正确"},
	CommonSignError:             {Label: "签名验证失败", Action: "请检查签名参数和方法是否都符合签名算法要求"},
	CommonAccountError:          {Label: "账号异常", Action: "用户账号异常，无需更多操作"},
	CommonSystemError:           {Label: "系统错误", Action: "5 开头的状态码都为系统问题，请使用相同参数稍后重新调用", Retry: true},
	CommonAuthCodeInvalid:       {Label: "收银员扫描的不是微信支付的条码", Action: "请扫描微信支付被扫条码 / 二维码"},
	CommonFrequencyLimited:      {Label: "频率超限", Action: "请求量不要超过接口调用频率限制"},
	CommonRatelimitExceeded:     {Label: "频率限制", Action: "请降低频率后重试"},
	CommonNoAuth:                {Label: "商户暂无权限使用此功能", Action: "请开通商户号权限。请联系产品或商务申请"},
	CommonRuleLimit:             {Label: "业务规则限制", Action: "因业务规则限制请求频率，请查看接口返回的详细信息"},
	CommonAuthCodeExpire:        {Label: "用户的条码已经过期", Action: "请收银员提示用户，请用户在微信上刷新条码，然后请收银员重新扫码。直接将错误展示给收银员"},
	CommonTradeError:            {Label: "交易错误", Action: "因业务原因交易失败，请查看接口返回的详细信息"},
	CommonUserNotExist:          {Label: "用户账户注销", Action: "请检查用户账户是否正确"},
	CommonError:                 {Label: "业务错误", Action: "该错误都会返回具体的错误原因，请根据实际返回做相应处理"},
	CommonFrequencyLimitExceed:  {Label: "接口限频", Action: "请降低调用频率"},
	CommonContractExisted:       {Label: "协议已存在", Action: "已开通自动扣费服务功能，无需重复开通"},
	CommonUserAccountAbnormal:   {Label: "用户账户异常", Action: "该确认用户账号是否正常，商家可联系微信支付或让用户联系微信支付客服处理"},
	CommonContractError:         {Label: "当前用户签约状态失效", Action: "请通过查询用户接口核实签约状态"},
	CommonRefundNotExists:       {Label: "订单号错误或订单状态不正确", Action: "请检查订单号是否有误以及订单状态是否正确，如：未支付、已支付未退款"},
	CommonContractNotConfirmed:  {Label: "二级商户未开启手动提现权限", Action: "二级商户号提现权限已关闭，无法发起提现"},
	CommonNoStatementExist:      {Label: "账单文件不存在", Action: "请检查当前商户号是否在指定日期有交易或退款发生"},
	CommonStatementCreating:     {Label: "账单生成中", Action: "请先检查当前商户号在指定日期内是否有成功的交易或退款，若有，则在T+1日上午8点后再重新下载"},
	CommonMchNotExists:          {Label: "商户号不存在", Action: "请确认传入的商户号是否正确"},
	CommonInvalidRequest:        {Label: "请求参数符合参数格式，但不符合业务规则", Action: "请确认相同单号是否使用了不同的参数"},
	CommonResourceNotExists:     {Label: "查询的资源不存在", Action: "请检查查询资源的对应id是否填写正确"},
	CommonResourceAlreadyExists: {Label: "用户已签约该商户，不可重复签约", Action: "请通过查询用户接口获取用户的签约信息"},
	CommonAlreadyExists:         {Label: "资源已存在", Action: "尝试创建的资源已存在，无需重复创建"},
	CommonUserNotRegistered:     {Label: "服务未开通或账号未注册", Action: "该用户尚未注册或开通当前服务，请开通后再试"},
	CommonUserNotExists:         {Label: "openid 不正确", Action: "请确认传入的 openid 是否正确"},
	CommonOrderClosed:           {Label: "订单已关闭", Action: "当前订单已关闭，请重新下单"},
	CommonOrderPaid:             {Label: "订单已支付", Action: "请确认该订单号是否重复支付，如果是新单，请使用新订单号提交"},
	CommonOrderReversed:         {Label: "订单已撤销", Action: "当前订单状态为“订单已撤销”，请提示用户重新支付"},
	CommonOrderclosed:           {Label: "订单已关闭", Action: "商户订单号异常，请重新下单支付"},
	CommonOrderpaid:             {Label: "订单已支付", Action: "请确认该订单号是否重复支付，如果是新单，请使用新订单号提交"},
	CommonOrderreversed:         {Label: "订单已撤销", Action: "当前订单状态为“订单已撤销”，请提示用户重新支付"},
	CommonAccountNotVerified:    {Label: "二级商户下行打款未成功", Action: "二级商户号结算银行卡信息有误，修改后重试"},
	CommonNotFound:              {Label: "请求的资源不存在", Action: "请商户检查需要查询的 id 或者请求 URL 是否正确"},
}
