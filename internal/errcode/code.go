// Package errcode 微信支付 APIv3 错误码目录
//
// 每个错误码按照可能返回它的接口归入三个分组：公共错误码、下单错误码、退款错误码。
// 常量的值就是微信支付返回的原始 code，显式写死，不做任何大小写转换。
package errcode

import (
	"errors"
	"fmt"
	"sort"
)

// Group 错误码分组
type Group string

const (
	GroupCommon Group = "common"
	GroupOrder  Group = "order"
	GroupRefund Group = "refund"
)

// Info 错误码说明，仅供开发者参考，不参与匹配
type Info struct {
	Label  string `json:"label"`  // 错误描述
	Action string `json:"action"` // 解决方案
	Retry  bool   `json:"retry"`  // 微信支付建议使用相同参数重新调用
}

// ErrUnknownCode 未收录的错误码
var ErrUnknownCode = errors.New("unknown wechat pay error code")

// UnknownCodeError 解码失败，Token 为原始 code
type UnknownCodeError struct {
	Token string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown wechat pay error code: %q", e.Token)
}

func (e *UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownCode
}

// ErrorCode 微信支付接口错误码，三个分组的联合类型
type ErrorCode struct {
	Group Group
	Token string
}

// Common 返回公共错误码，分组不符时 ok 为 false
func (c ErrorCode) Common() (Common, bool) {
	if c.Group != GroupCommon {
		return "", false
	}
	return Common(c.Token), true
}

func (c ErrorCode) Order() (Order, bool) {
	if c.Group != GroupOrder {
		return "", false
	}
	return Order(c.Token), true
}

func (c ErrorCode) Refund() (Refund, bool) {
	if c.Group != GroupRefund {
		return "", false
	}
	return Refund(c.Token), true
}

func (c ErrorCode) IsZero() bool {
	return c.Group == "" && c.Token == ""
}

func (c ErrorCode) String() string {
	if c.IsZero() {
		return ""
	}
	return string(c.Group) + ":" + c.Token
}

// MarshalText 序列化为原始 code，零值为空字符串
//
// 不校验 Token 是否收录，手工构造的 ErrorCode 原样输出。
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.Token), nil
}

// UnmarshalText 通过 Decode 解析原始 code，json 字符串字段会走这里
//
// 空字符串还原为零值，与 MarshalText 对称。
func (c *ErrorCode) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ErrorCode{}
		return nil
	}
	code, err := Decode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// table 单个分组的查找表
type table struct {
	group Group
	info  func(token string) (Info, bool)
	list  func() []string
}

// searchOrder 解码时依次尝试的分组，公共错误码优先
var searchOrder = []table{
	{
		group: GroupCommon,
		info: func(token string) (Info, bool) {
			info, ok := commonCodes[Common(token)]
			return info, ok
		},
		list: func() []string { return keys(commonCodes) },
	},
	{
		group: GroupOrder,
		info: func(token string) (Info, bool) {
			info, ok := orderCodes[Order(token)]
			return info, ok
		},
		list: func() []string { return keys(orderCodes) },
	},
	{
		group: GroupRefund,
		info: func(token string) (Info, bool) {
			info, ok := refundCodes[Refund(token)]
			return info, ok
		},
		list: func() []string { return keys(refundCodes) },
	},
}

// Decode 将原始 code 解析为 ErrorCode
//
// 按 公共 → 下单 → 退款 的顺序精确匹配（区分大小写），返回第一个命中的分组。
// 未命中时返回 *UnknownCodeError。
func Decode(token string) (ErrorCode, error) {
	for _, t := range searchOrder {
		if _, ok := t.info(token); ok {
			return ErrorCode{Group: t.group, Token: token}, nil
		}
	}
	return ErrorCode{}, &UnknownCodeError{Token: token}
}

// Lookup 查询错误码说明
func Lookup(code ErrorCode) (Info, bool) {
	for _, t := range searchOrder {
		if t.group == code.Group {
			return t.info(code.Token)
		}
	}
	return Info{}, false
}

// Groups 返回解码顺序
func Groups() []Group {
	groups := make([]Group, 0, len(searchOrder))
	for _, t := range searchOrder {
		groups = append(groups, t.group)
	}
	return groups
}

// All 返回全部错误码，分组按解码顺序，组内按 code 排序
func All() []ErrorCode {
	var codes []ErrorCode
	for _, t := range searchOrder {
		codes = append(codes, groupCodes(t)...)
	}
	return codes
}

// ByGroup 返回指定分组的错误码
func ByGroup(group Group) ([]ErrorCode, bool) {
	for _, t := range searchOrder {
		if t.group == group {
			return groupCodes(t), true
		}
	}
	return nil, false
}

func groupCodes(t table) []ErrorCode {
	tokens := t.list()
	codes := make([]ErrorCode, 0, len(tokens))
	for _, token := range tokens {
		codes = append(codes, ErrorCode{Group: t.group, Token: token})
	}
	return codes
}

func keys[K ~string](m map[K]Info) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}
