package errcode

// Refund 退款错误码
// https://pay.weixin.qq.com/wiki/doc/apiv3/apis/chapter3_1_9.shtml
type Refund string

func ParseRefund(token string) (Refund, bool) {
	if _, ok := refundCodes[Refund(token)]; !ok {
		return "", false
	}
	return Refund(token), true
}

func (r Refund) Code() ErrorCode {
	return ErrorCode{Group: GroupRefund, Token: string(r)}
}

const (
	RefundNotEnough Refund = "NOT_ENOUGH" // 余额不足
)

var refundCodes = map[Refund]Info{
	RefundNotEnough: {Label: "余额不足", Action: "此状态代表退款申请失败，商户可根据具体的错误提示做相应的处理。"},
}
