package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"wxpay-errcode-api/internal/config"
	"wxpay-errcode-api/internal/dal"
	"wxpay-errcode-api/internal/event"
	"wxpay-errcode-api/internal/handler"
	"wxpay-errcode-api/internal/idgen"
	"wxpay-errcode-api/internal/logger"
	"wxpay-errcode-api/internal/middleware"
	"wxpay-errcode-api/internal/mq"
	"wxpay-errcode-api/internal/notify"
	"wxpay-errcode-api/internal/repo"
	"wxpay-errcode-api/internal/service"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitRedis()
	dal.InitRabbitMQ()
	defer dal.CloseRabbitMQ()

	// idgen
	if err := idgen.Init(config.C.IDGen.NodeID); err != nil {
		log.Fatal(err)
	}

	infoLog := logger.NewLogger("info")
	errorLog := logger.NewLogger("error")
	errcodeLog := logger.NewLogger("errcode")

	publishers := event.Multi{}
	if dal.RabbitCh != nil {
		publishers = append(publishers, mq.NewRabbitPublisher(dal.RabbitCh, config.C.RabbitMQ.Exchange))
	}
	if n := config.C.Notify; n.TelegramBotToken != "" && n.TelegramChatID != "" {
		publishers = append(publishers, notify.NewTelegramNotifier(n.TelegramBotToken, n.TelegramChatID, errorLog))
	}
	var publisher event.Publisher = publishers
	svc := service.NewErrcodeService(repo.NewUnknownCodeRepo(dal.RedisClient), publisher, errcodeLog, idgen.New)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// 设置可信代理 IP（如本地或内网）
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Trace(), middleware.RequestLogger(infoLog, errorLog), middleware.Recover(errorLog))

	handler.NewErrcodeHandler(svc).Register(r.Group("/api/v1"))

	addr := ":" + config.C.Server.Port
	infoLog.Infof("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
