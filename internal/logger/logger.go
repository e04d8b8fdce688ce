package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"wxpay-errcode-api/internal/config"
)

// NewLogger 按日志类型创建 logrus 实例，写入 <dir>/<logType>/<logType>.log.YYYY-MM-DD
func NewLogger(logType string) *logrus.Logger {
	log := logrus.New()
	logPath := filepath.Join(config.C.Log.Dir, logType)
	if config.C.Log.Dir == "" {
		logPath = filepath.Join("./logs", logType)
	}
	_ = os.MkdirAll(logPath, 0755)

	maxDays := config.C.Log.MaxDays
	if maxDays <= 0 {
		maxDays = 7
	}
	writer, err := rotatelogs.New(
		filepath.Join(logPath, logType+".log.%Y-%m-%d"),
		rotatelogs.WithLinkName(filepath.Join(logPath, logType+".log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(maxDays)*24*time.Hour),
	)
	if err != nil {
		log.SetOutput(os.Stdout)
		log.Warnf("rotatelogs init failed, fallback to stdout: %v", err)
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}

	log.SetReportCaller(true)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			// 自定义显示格式：函数名 + 文件路径
			funcName := f.Function
			fileLine := fmt.Sprintf("%s:%d", f.File, f.Line)
			return funcName, fileLine
		},
	})

	level, err := logrus.ParseLevel(config.C.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// Discard 不输出任何内容，测试使用
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
