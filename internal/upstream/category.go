package upstream

import (
	"wxpay-errcode-api/internal/constant"
	"wxpay-errcode-api/internal/errcode"
)

var categories = map[errcode.ErrorCode]int{
	errcode.CommonSignError.Code():              constant.CodeUpstreamSignError,
	errcode.CommonParamError.Code():             constant.CodeUpstreamDataFormatError,
	errcode.CommonInvalidRequest.Code():         constant.CodeUpstreamDataFormatError,
	errcode.CommonAuthCodeInvalid.Code():        constant.CodeUpstreamDataFormatError,
	errcode.CommonAuthCodeExpire.Code():         constant.CodeUpstreamDataFormatError,
	errcode.OrderInvalidTransactionid.Code():    constant.CodeUpstreamDataFormatError,
	errcode.OrderOpenidMismatch.Code():          constant.CodeUpstreamDataFormatError,
	errcode.CommonFrequencyLimited.Code():       constant.CodeUpstreamRateLimit,
	errcode.CommonRatelimitExceeded.Code():      constant.CodeUpstreamRateLimit,
	errcode.CommonFrequencyLimitExceed.Code():   constant.CodeUpstreamRateLimit,
	errcode.CommonRuleLimit.Code():              constant.CodeUpstreamRateLimit,
	errcode.CommonOutTradeNoUsed.Code():         constant.CodeUpstreamDuplicateOrder,
	errcode.CommonOrderPaid.Code():              constant.CodeUpstreamDuplicateOrder,
	errcode.CommonOrderpaid.Code():              constant.CodeUpstreamDuplicateOrder,
	errcode.CommonAlreadyExists.Code():          constant.CodeUpstreamDuplicateOrder,
	errcode.CommonResourceAlreadyExists.Code():  constant.CodeUpstreamDuplicateOrder,
	errcode.CommonContractExisted.Code():        constant.CodeUpstreamDuplicateOrder,
	errcode.RefundNotEnough.Code():              constant.CodeUpstreamBalanceInsufficient,
	errcode.CommonAppidMchidNotMatch.Code():     constant.CodeUpstreamInvalidAccount,
	errcode.CommonMchNotExists.Code():           constant.CodeUpstreamInvalidAccount,
	errcode.CommonNoAuth.Code():                 constant.CodeUpstreamInvalidAccount,
	errcode.CommonAccountError.Code():           constant.CodeUpstreamInvalidAccount,
	errcode.CommonAccountNotVerified.Code():     constant.CodeUpstreamInvalidAccount,
	errcode.CommonContractNotConfirmed.Code():   constant.CodeUpstreamInvalidAccount,
	errcode.CommonRequestBlocked.Code():         constant.CodeUpstreamRiskControl,
	errcode.CommonUserAccountAbnormal.Code():    constant.CodeUpstreamRiskControl,
	errcode.CommonBankError.Code():              constant.CodeUpstreamBankProcessing,
	errcode.CommonBizErrNeedRetry.Code():        constant.CodeUpstreamBankProcessing,
	errcode.CommonUserPaying.Code():             constant.CodeUpstreamBankProcessing,
	errcode.CommonStatementCreating.Code():      constant.CodeUpstreamBankProcessing,
	errcode.CommonOrderNotExist.Code():          constant.CodeUpstreamRejected,
	errcode.CommonRefundNotExists.Code():        constant.CodeUpstreamRejected,
	errcode.CommonResourceNotExists.Code():      constant.CodeUpstreamRejected,
	errcode.CommonNotFound.Code():               constant.CodeUpstreamRejected,
	errcode.CommonContractNotExist.Code():       constant.CodeUpstreamRejected,
	errcode.CommonContractError.Code():          constant.CodeUpstreamRejected,
	errcode.CommonPhoneNotExist.Code():          constant.CodeUpstreamRejected,
	errcode.CommonNoStatementExist.Code():       constant.CodeUpstreamRejected,
	errcode.CommonUserNotExist.Code():           constant.CodeUpstreamRejected,
	errcode.CommonUserNotExists.Code():          constant.CodeUpstreamRejected,
	errcode.CommonUserNotRegistered.Code():      constant.CodeUpstreamRejected,
	errcode.CommonOrderClosed.Code():            constant.CodeUpstreamRejected,
	errcode.CommonOrderclosed.Code():            constant.CodeUpstreamRejected,
	errcode.CommonOrderReversed.Code():          constant.CodeUpstreamRejected,
	errcode.CommonOrderreversed.Code():          constant.CodeUpstreamRejected,
}

// Category 将微信支付错误码归类为内部上游错误码，未归类的返回 CodeUpstreamError
func Category(code errcode.ErrorCode) int {
	if c, ok := categories[code]; ok {
		return c
	}
	return constant.CodeUpstreamError
}
