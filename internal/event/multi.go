package event

import "errors"

// Multi 依次发布到所有 Publisher，返回合并后的错误
type Multi []Publisher

func (m Multi) Publish(topic string, msg any) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(topic, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
