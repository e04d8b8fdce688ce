package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wxpay-errcode-api/internal/constant"
)

func TestFromError(t *testing.T) {
	resp := FromError(constant.NewError(constant.CodeProviderGroupInvalid).WithData("payout"))
	assert.Equal(t, constant.CodeProviderGroupInvalid, resp.Code)
	assert.Equal(t, "错误码分组不存在", resp.Msg)
	assert.Equal(t, "payout", resp.Data)

	resp = FromError(errors.New("boom"))
	assert.Equal(t, constant.CodeSystemError, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestError_Unregistered(t *testing.T) {
	resp := Error(4242).WithTrace("abc")
	assert.Equal(t, "未知错误", resp.Msg)
	assert.Equal(t, "abc", resp.TraceID)
}

func TestGetRealClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "10.0.0.9", GetRealClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "garbage, 203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetRealClientIP(c))

	c.Request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetRealClientIP(c))
}
