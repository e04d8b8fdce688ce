package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"wxpay-errcode-api/internal/constant"
	"wxpay-errcode-api/internal/dto"
	"wxpay-errcode-api/internal/errcode"
	"wxpay-errcode-api/internal/event"
	"wxpay-errcode-api/internal/upstream"
)

// 未收录错误码的来源
const (
	SourceLookup = "lookup"
	SourceDecode = "decode"
)

// 合并读取待补充错误码的超时
const unknownListTimeout = 3 * time.Second

// UnknownCodeStore 未收录错误码存储
type UnknownCodeStore interface {
	Record(ctx context.Context, token, source string) error
	List(ctx context.Context) ([]dto.UnknownCodeVo, error)
	Remove(ctx context.Context, token string) error
}

// ErrcodeService 错误码查询服务
type ErrcodeService struct {
	store     UnknownCodeStore
	publisher event.Publisher
	log       logrus.FieldLogger
	nextID    func() int64
	now       func() time.Time
	sf        singleflight.Group
}

func NewErrcodeService(store UnknownCodeStore, publisher event.Publisher, log logrus.FieldLogger, nextID func() int64) *ErrcodeService {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &ErrcodeService{
		store:     store,
		publisher: publisher,
		log:       log,
		nextID:    nextID,
		now:       time.Now,
	}
}

// Lookup 按原始错误码查询，未收录时记录并返回 CodeProviderCodeUnknown
func (s *ErrcodeService) Lookup(ctx context.Context, token string) (*dto.ErrorCodeVo, error) {
	code, err := errcode.Decode(token)
	if err != nil {
		s.reportUnknown(ctx, token, SourceLookup)
		return nil, constant.WrapError(constant.CodeProviderCodeUnknown, err).WithData(map[string]string{"code": token})
	}
	vo := toVo(code)
	return &vo, nil
}

// Catalog 列出错误码，group 为空时返回全部
func (s *ErrcodeService) Catalog(group string) ([]dto.ErrorCodeVo, error) {
	var codes []errcode.ErrorCode
	if group == "" {
		codes = errcode.All()
	} else {
		var ok bool
		codes, ok = errcode.ByGroup(errcode.Group(group))
		if !ok {
			return nil, constant.NewError(constant.CodeProviderGroupInvalid).WithData(map[string]string{"group": group})
		}
	}

	list := make([]dto.ErrorCodeVo, 0, len(codes))
	for _, code := range codes {
		list = append(list, toVo(code))
	}
	return list, nil
}

// ParseResponse 解析微信支付错误响应体
func (s *ErrcodeService) ParseResponse(ctx context.Context, statusCode int, body []byte) (*dto.DecodeResultVo, error) {
	apiErr, err := upstream.ParseError(statusCode, body)
	if err != nil {
		s.log.WithError(err).WithField("statusCode", statusCode).Warn("[Errcode] parse wechat pay error body failed")
		return nil, constant.WrapError(constant.CodeProviderBodyInvalid, err)
	}

	res := &dto.DecodeResultVo{
		StatusCode: apiErr.StatusCode,
		Known:      apiErr.Known(),
		Message:    apiErr.Message,
	}
	if apiErr.Detail != nil {
		res.Detail = &dto.ErrorDetailVo{}
		if err := copier.Copy(res.Detail, apiErr.Detail); err != nil {
			return nil, constant.WrapError(constant.CodeSystemError, err)
		}
	}

	if !apiErr.Known() {
		s.reportUnknown(ctx, apiErr.RawCode, SourceDecode)
		res.ErrorCodeVo = dto.ErrorCodeVo{
			Code:     apiErr.RawCode,
			Category: constant.CodeUpstreamError,
		}
		return res, nil
	}

	s.log.WithFields(logrus.Fields{
		"code":       apiErr.RawCode,
		"statusCode": statusCode,
		"retry":      apiErr.Retryable(),
	}).Info("[Errcode] wechat pay error decoded")
	res.ErrorCodeVo = toVo(apiErr.Code)
	return res, nil
}

// Unknown 待补充的错误码，并发请求合并为一次 Redis 读取
//
// 共享的读取不随任何一个请求取消，各请求只在自己的 ctx 结束时提前返回。
func (s *ErrcodeService) Unknown(ctx context.Context) ([]dto.UnknownCodeVo, error) {
	ch := s.sf.DoChan("unknown", func() (interface{}, error) {
		listCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unknownListTimeout)
		defer cancel()
		return s.store.List(listCtx)
	})

	select {
	case <-ctx.Done():
		return nil, constant.WrapError(constant.CodeRedisError, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			s.log.WithError(res.Err).Error("[Errcode] list unknown codes failed")
			return nil, constant.WrapError(constant.CodeRedisError, res.Err)
		}
		return res.Val.([]dto.UnknownCodeVo), nil
	}
}

// ResolveUnknown 错误码已补充进目录后从待补充列表移除
func (s *ErrcodeService) ResolveUnknown(ctx context.Context, token string) error {
	if err := s.store.Remove(ctx, token); err != nil {
		s.log.WithError(err).WithField("code", token).Error("[Errcode] remove unknown code failed")
		return constant.WrapError(constant.CodeRedisError, err)
	}
	s.log.WithField("code", token).Info("[Errcode] unknown code resolved")
	return nil
}

// reportUnknown 记录和发布失败只打日志，不影响查询结果
func (s *ErrcodeService) reportUnknown(ctx context.Context, token, source string) {
	entry := s.log.WithFields(logrus.Fields{"code": token, "source": source})
	entry.Warn("[Errcode] unknown wechat pay error code")

	if err := s.store.Record(ctx, token, source); err != nil {
		entry.WithError(err).Error("[Errcode] record unknown code failed")
	}

	evt := dto.UnknownCodeMQ{
		EventID: s.nextID(),
		Code:    token,
		Source:  source,
		SeenAt:  s.now().Unix(),
	}
	if err := s.publisher.Publish(event.TopicUnknownCode, evt); err != nil {
		entry.WithError(err).Error("[Errcode] publish unknown code event failed")
	}
}

func toVo(code errcode.ErrorCode) dto.ErrorCodeVo {
	info, _ := errcode.Lookup(code)
	return dto.ErrorCodeVo{
		Code:     code.Token,
		Group:    string(code.Group),
		Label:    info.Label,
		Action:   info.Action,
		Retry:    info.Retry,
		Category: upstream.Category(code),
	}
}
