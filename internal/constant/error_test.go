package constant

import (
	"errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeProviderCodeUnknown)
	if err.Code() != CodeProviderCodeUnknown {
		t.Errorf("unexpected code: %d", err.Code())
	}
	if err.Message() != "未收录的微信支付错误码" {
		t.Errorf("unexpected message: %s", err.Message())
	}

	if NewError(9999).Message() != "未知错误" {
		t.Errorf("unregistered code should fall back to 未知错误")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("redis: connection refused")
	err := WrapError(CodeRedisError, cause).WithData("x")
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error should match its cause")
	}
	if err.Data() != "x" {
		t.Errorf("unexpected data: %v", err.Data())
	}
}

func TestErrorMessages_Bilingual(t *testing.T) {
	for code, info := range ErrorMessages {
		if info.CN == "" || info.EN == "" {
			t.Errorf("code %d missing message: %+v", code, info)
		}
	}
}
