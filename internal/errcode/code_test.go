package errcode

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EveryCatalogToken(t *testing.T) {
	for token := range commonCodes {
		code, err := Decode(string(token))
		require.NoError(t, err, token)
		got, ok := code.Common()
		assert.True(t, ok, token)
		assert.Equal(t, token, got)
	}
	for token := range orderCodes {
		code, err := Decode(string(token))
		require.NoError(t, err, token)
		got, ok := code.Order()
		assert.True(t, ok, token)
		assert.Equal(t, token, got)
	}
	for token := range refundCodes {
		code, err := Decode(string(token))
		require.NoError(t, err, token)
		got, ok := code.Refund()
		assert.True(t, ok, token)
		assert.Equal(t, token, got)
	}
}

// 微信支付文档中的原始 code，手工维护，不从目录生成
var wantTokens = map[Group][]string{
	GroupCommon: {
		"APPID_MCHID_NOT_MATCH", "BANK_ERROR", "OUT_TRADE_NO_USED", "REQUEST_BLOCKED",
		"BIZERR_NEED_RETRY", "USERPAYING", "PARAM_ERROR", "ORDER_NOT_EXIST",
		"CONTRACT_NOT_EXIST", "PHONE_NOT_EXIST", "SIGN_ERROR", "ACCOUNT_ERROR",
		"SYSTEM_ERROR", "AUTH_CODE_INVALID", "FREQUENCY_LIMITED", "RATELIMIT_EXCEEDED",
		"NO_AUTH", "RULE_LIMIT", "AUTH_CODE_EXPIRE", "TRADE_ERROR",
		"USER_NOT_EXIST", "ERROR", "FREQUENCY_LIMIT_EXCEED", "CONTRACT_EXISTED",
		"USER_ACCOUNT_ABNORMAL", "CONTRACT_ERROR", "REFUND_NOT_EXISTS", "CONTRACT_NOT_CONFIRMED",
		"NO_STATEMENT_EXIST", "STATEMENT_CREATING", "MCH_NOT_EXISTS", "INVALID_REQUEST",
		"RESOURCE_NOT_EXISTS", "RESOURCE_ALREADY_EXISTS", "ALREADY_EXISTS", "USER_NOT_REGISTERED",
		"USER_NOT_EXISTS", "ORDER_CLOSED", "ORDER_PAID", "ORDER_REVERSED",
		"ORDERCLOSED", "ORDERPAID", "ORDERREVERSED", "ACCOUNT_NOT_VERIFIED",
		"NOT_FOUND",
	},
	GroupOrder:  {"OPENID_MISMATCH", "INVALID_TRANSACTIONID"},
	GroupRefund: {"NOT_ENOUGH"},
}

func TestDecode_WireTokens(t *testing.T) {
	total := 0
	for group, tokens := range wantTokens {
		codes, ok := ByGroup(group)
		require.True(t, ok, group)
		assert.ElementsMatch(t, tokens, tokenList(codes), group)

		for _, token := range tokens {
			code, err := Decode(token)
			require.NoError(t, err, token)
			assert.Equal(t, ErrorCode{Group: group, Token: token}, code)
		}
		total += len(tokens)
	}
	assert.Equal(t, 48, total)

	assert.Equal(t, "BIZERR_NEED_RETRY", string(CommonBizErrNeedRetry))
	assert.Equal(t, "USERPAYING", string(CommonUserPaying))
	assert.Equal(t, "ORDERCLOSED", string(CommonOrderclosed))
	assert.Equal(t, "INVALID_TRANSACTIONID", string(OrderInvalidTransactionid))
	assert.Equal(t, "NOT_ENOUGH", string(RefundNotEnough))
}

func tokenList(codes []ErrorCode) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.Token)
	}
	return out
}

func TestDecode_CatalogSize(t *testing.T) {
	assert.Len(t, commonCodes, 45)
	assert.Len(t, orderCodes, 2)
	assert.Len(t, refundCodes, 1)
	assert.Len(t, All(), 48)
}

func TestDecode_Unknown(t *testing.T) {
	for _, token := range []string{
		"NOT_A_REAL_CODE",
		"",
		"bank_error",
		"Bank_Error",
		"BANK_ERROR_2",
		"BANK_ERRO",
		" BANK_ERROR",
		"BANK_ERROR ",
		"BIZ_ERR_NEED_RETRY",
	} {
		code, err := Decode(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, code.IsZero())
		assert.ErrorIs(t, err, ErrUnknownCode)

		var unknown *UnknownCodeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, token, unknown.Token)
	}
}

func TestDecode_CaseSensitive(t *testing.T) {
	code, err := Decode("BANK_ERROR")
	require.NoError(t, err)
	assert.Equal(t, CommonBankError.Code(), code)

	_, err = Decode("bank_error")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestDecode_NearDuplicatesStayDistinct(t *testing.T) {
	pairs := [][2]string{
		{"ORDER_CLOSED", "ORDERCLOSED"},
		{"ORDER_PAID", "ORDERPAID"},
		{"ORDER_REVERSED", "ORDERREVERSED"},
		{"USER_NOT_EXISTS", "USER_NOT_EXIST"},
		{"NO_AUTH", "RULE_LIMIT"},
		{"FREQUENCY_LIMITED", "FREQUENCY_LIMIT_EXCEED"},
	}
	for _, p := range pairs {
		a, err := Decode(p[0])
		require.NoError(t, err)
		b, err := Decode(p[1])
		require.NoError(t, err)
		assert.NotEqual(t, a, b, "%s vs %s", p[0], p[1])
	}

	a, _ := Decode("ORDER_CLOSED")
	b, _ := Decode("ORDERCLOSED")
	assert.Equal(t, CommonOrderClosed.Code(), a)
	assert.Equal(t, CommonOrderclosed.Code(), b)
}

func TestDecode_GroupOf(t *testing.T) {
	code, err := Decode("OPENID_MISMATCH")
	require.NoError(t, err)
	assert.Equal(t, GroupOrder, code.Group)
	_, ok := code.Common()
	assert.False(t, ok)

	code, err = Decode("NOT_ENOUGH")
	require.NoError(t, err)
	assert.Equal(t, RefundNotEnough.Code(), code)
	assert.Equal(t, "refund:NOT_ENOUGH", code.String())
}

func TestGroups_SearchOrder(t *testing.T) {
	assert.Equal(t, []Group{GroupCommon, GroupOrder, GroupRefund}, Groups())

	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, GroupCommon, all[0].Group)
	assert.Equal(t, GroupRefund, all[len(all)-1].Group)
}

func TestGroups_Disjoint(t *testing.T) {
	for token := range orderCodes {
		_, ok := commonCodes[Common(token)]
		assert.False(t, ok, token)
	}
	for token := range refundCodes {
		_, ok := commonCodes[Common(token)]
		assert.False(t, ok, token)
		_, ok = orderCodes[Order(token)]
		assert.False(t, ok, token)
	}
}

func TestParseGroup(t *testing.T) {
	c, ok := ParseCommon("SIGN_ERROR")
	assert.True(t, ok)
	assert.Equal(t, CommonSignError, c)

	_, ok = ParseCommon("OPENID_MISMATCH")
	assert.False(t, ok)

	o, ok := ParseOrder("INVALID_TRANSACTIONID")
	assert.True(t, ok)
	assert.Equal(t, OrderInvalidTransactionid, o)

	r, ok := ParseRefund("SIGN_ERROR")
	assert.False(t, ok)
	assert.Empty(t, r)
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(CommonSystemError.Code())
	require.True(t, ok)
	assert.Equal(t, "系统错误", info.Label)
	assert.True(t, info.Retry)

	info, ok = Lookup(CommonOrderclosed.Code())
	require.True(t, ok)
	assert.False(t, info.Retry)
	assert.NotEmpty(t, info.Action)

	_, ok = Lookup(ErrorCode{Group: GroupRefund, Token: "SIGN_ERROR"})
	assert.False(t, ok)
	_, ok = Lookup(ErrorCode{})
	assert.False(t, ok)
}

func TestByGroup(t *testing.T) {
	codes, ok := ByGroup(GroupOrder)
	require.True(t, ok)
	assert.Equal(t, []ErrorCode{OrderInvalidTransactionid.Code(), OrderOpenidMismatch.Code()}, codes)

	_, ok = ByGroup("payout")
	assert.False(t, ok)
}

func TestErrorCode_JSON(t *testing.T) {
	var resp struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"code":"NOT_ENOUGH","message":"余额不足"}`), &resp))
	assert.Equal(t, RefundNotEnough.Code(), resp.Code)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"NOT_ENOUGH","message":"余额不足"}`, string(out))

	err = json.Unmarshal([]byte(`{"code":"NEW_CODE_2030"}`), &resp)
	var unknown *UnknownCodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NEW_CODE_2030", unknown.Token)
}

func TestErrorCode_JSONZeroValue(t *testing.T) {
	var resp struct {
		Code ErrorCode `json:"code"`
	}
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":""}`, string(out))

	resp.Code = CommonBankError.Code()
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.Code.IsZero())
}
