package event

// TopicUnknownCode 未收录错误码事件
const TopicUnknownCode = "errcode.unknown"

type Publisher interface {
	Publish(topic string, msg any) error
}

// NopPublisher 未配置消息队列时使用
type NopPublisher struct{}

func (NopPublisher) Publish(string, any) error { return nil }
