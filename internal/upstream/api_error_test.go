package upstream

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxpay-errcode-api/internal/constant"
	"wxpay-errcode-api/internal/errcode"
)

func TestParseError_Known(t *testing.T) {
	body := []byte(`{"code":"PARAM_ERROR","message":"参数错误","detail":{"field":"/amount/total","value":0,"issue":"must be greater than 0","location":"body"}}`)
	apiErr, err := ParseError(http.StatusBadRequest, body)
	require.NoError(t, err)

	assert.True(t, apiErr.Known())
	assert.Equal(t, errcode.CommonParamError.Code(), apiErr.Code)
	assert.Equal(t, "参数错误", apiErr.Message)
	require.NotNil(t, apiErr.Detail)
	assert.Equal(t, "/amount/total", apiErr.Detail.Field)
	assert.Equal(t, "body", apiErr.Detail.Location)
	assert.Nil(t, errors.Unwrap(apiErr))
	assert.Contains(t, apiErr.Error(), "PARAM_ERROR")
}

func TestParseError_Unknown(t *testing.T) {
	apiErr, err := ParseError(http.StatusForbidden, []byte(`{"code":"SOMETHING_NEW","message":"新错误"}`))
	require.NoError(t, err)

	assert.False(t, apiErr.Known())
	assert.True(t, apiErr.Code.IsZero())
	assert.Equal(t, "SOMETHING_NEW", apiErr.RawCode)
	assert.ErrorIs(t, apiErr, errcode.ErrUnknownCode)

	var unknown *errcode.UnknownCodeError
	require.True(t, errors.As(apiErr, &unknown))
	assert.Equal(t, "SOMETHING_NEW", unknown.Token)
}

func TestParseError_InvalidBody(t *testing.T) {
	for _, body := range []string{``, `not json`, `{"message":"no code"}`, `{"code":"  "}`, `{"code":1}`} {
		apiErr, err := ParseError(http.StatusInternalServerError, []byte(body))
		assert.Nil(t, apiErr, body)
		assert.ErrorIs(t, err, ErrInvalidBody, body)
	}
}

func TestAPIError_Retryable(t *testing.T) {
	apiErr, err := ParseError(http.StatusInternalServerError, []byte(`{"code":"SYSTEM_ERROR","message":"系统错误"}`))
	require.NoError(t, err)
	assert.True(t, apiErr.Retryable())

	apiErr, err = ParseError(http.StatusBadRequest, []byte(`{"code":"SIGN_ERROR","message":"签名错误"}`))
	require.NoError(t, err)
	assert.False(t, apiErr.Retryable())

	apiErr, err = ParseError(http.StatusBadRequest, []byte(`{"code":"UNSEEN","message":""}`))
	require.NoError(t, err)
	assert.False(t, apiErr.Retryable())
}

func TestCategory(t *testing.T) {
	assert.Equal(t, constant.CodeUpstreamSignError, Category(errcode.CommonSignError.Code()))
	assert.Equal(t, constant.CodeUpstreamBalanceInsufficient, Category(errcode.RefundNotEnough.Code()))
	assert.Equal(t, constant.CodeUpstreamRejected, Category(errcode.CommonOrderclosed.Code()))
	assert.Equal(t, constant.CodeUpstreamRateLimit, Category(errcode.CommonFrequencyLimitExceed.Code()))
	assert.Equal(t, constant.CodeUpstreamError, Category(errcode.CommonSystemError.Code()))
	assert.Equal(t, constant.CodeUpstreamError, Category(errcode.ErrorCode{}))
}

func TestCategory_KeysAreCatalogCodes(t *testing.T) {
	for code := range categories {
		_, ok := errcode.Lookup(code)
		assert.True(t, ok, code.String())
	}
}
