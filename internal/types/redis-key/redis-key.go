package rediskey

import "wxpay-errcode-api/internal/config"

// UnknownCodeCountKey 未收录错误码出现次数 hash: token -> count
func UnknownCodeCountKey() string {
	return config.C.Project.Name + ":errcode:unknown:count"
}

// UnknownCodeLastSeenKey 未收录错误码最后出现时间 hash: token -> unix 秒
func UnknownCodeLastSeenKey() string {
	return config.C.Project.Name + ":errcode:unknown:last_seen"
}

// UnknownCodeSourceKey 未收录错误码最后一次来源 hash: token -> source
func UnknownCodeSourceKey() string {
	return config.C.Project.Name + ":errcode:unknown:source"
}
