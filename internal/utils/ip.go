package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// 反向代理场景下依次检查的请求头
var ipHeaders = []string{
	"X-Real-IP",
	"X-Forwarded-For", // 多层代理，取第一个合法 IP
}

// GetRealClientIP 获取客户端真实 IP
func GetRealClientIP(c *gin.Context) string {
	for _, header := range ipHeaders {
		for _, ip := range strings.Split(c.GetHeader(header), ",") {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	ip, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err == nil && net.ParseIP(ip) != nil {
		return ip
	}
	return ""
}
