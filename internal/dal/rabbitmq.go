package dal

import (
	"log"

	"wxpay-errcode-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

// UnknownCodeRoutingKey 未收录错误码事件的路由键
const UnknownCodeRoutingKey = "errcode.unknown"

// InitRabbitMQ 未配置 url 时跳过，事件不会发布
func InitRabbitMQ() {
	c := config.C.RabbitMQ
	if c.URL == "" {
		log.Printf("rabbitmq url empty, unknown-code events disabled")
		return
	}
	conn, err := amqp.Dial(c.URL)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare(c.Exchange, "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare %s failed: %v", c.Queue, err)
	}
	if err := ch.QueueBind(c.Queue, UnknownCodeRoutingKey, c.Exchange, false, nil); err != nil {
		log.Fatalf("queue bind %s failed: %v", c.Queue, err)
	}

	RabbitConn = conn
	RabbitCh = ch
}

// CloseRabbitMQ 关闭通道和连接
func CloseRabbitMQ() {
	if RabbitCh != nil {
		_ = RabbitCh.Close()
	}
	if RabbitConn != nil {
		_ = RabbitConn.Close()
	}
}
