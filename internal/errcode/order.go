package errcode

// Order 下单错误码
//   - JSAPI 下单 https://pay.weixin.qq.com/wiki/doc/apiv3/apis/chapter3_1_1.shtml
//   - APP 下单 https://pay.weixin.qq.com/wiki/doc/apiv3/apis/chapter3_2_1.shtml
type Order string

func ParseOrder(token string) (Order, bool) {
	if _, ok := orderCodes[Order(token)]; !ok {
		return "", false
	}
	return Order(token), true
}

func (o Order) Code() ErrorCode {
	return ErrorCode{Group: GroupOrder, Token: string(o)}
}

const (
	OrderOpenidMismatch       Order = "OPENID_MISMATCH"       // openid 和 appid 不匹配
	OrderInvalidTransactionid Order = "INVALID_TRANSACTIONID" // 订单号非法
)

var orderCodes = map[Order]Info{
	OrderOpenidMismatch:       {Label: "openid和appid不匹配", Action: "请确认openid和appid是否匹配"},
	OrderInvalidTransactionid: {Label: "订单号非法", Action: "请检查微信支付订单号是否正确"},
}
