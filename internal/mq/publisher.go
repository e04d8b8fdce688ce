package mq

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/streadway/amqp"
)

// Channel amqp.Channel 中发布所需的方法
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitPublisher 以 JSON 发布事件，topic 作为路由键
type RabbitPublisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
}

func NewRabbitPublisher(ch Channel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, exchange: exchange}
}

var errNoChannel = errors.New("rabbitmq channel not initialized")

func (p *RabbitPublisher) Publish(topic string, msg any) error {
	if p.ch == nil {
		return errNoChannel
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// amqp.Channel 不支持并发发布
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		p.exchange,
		topic,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
}
