package repo

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"wxpay-errcode-api/internal/dto"
	rediskey "wxpay-errcode-api/internal/types/redis-key"
)

// UnknownCodeRepo 未收录错误码记录，供人工补充目录
type UnknownCodeRepo struct {
	rdb *redis.Client
	now func() time.Time
}

func NewUnknownCodeRepo(rdb *redis.Client) *UnknownCodeRepo {
	return &UnknownCodeRepo{rdb: rdb, now: time.Now}
}

// Record 出现次数 +1 并刷新最后出现时间和来源
func (r *UnknownCodeRepo) Record(ctx context.Context, token, source string) error {
	pipe := r.rdb.TxPipeline()
	pipe.HIncrBy(ctx, rediskey.UnknownCodeCountKey(), token, 1)
	pipe.HSet(ctx, rediskey.UnknownCodeLastSeenKey(), token, r.now().Unix())
	if source != "" {
		pipe.HSet(ctx, rediskey.UnknownCodeSourceKey(), token, source)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// List 按出现次数倒序，次数相同按错误码排序
func (r *UnknownCodeRepo) List(ctx context.Context) ([]dto.UnknownCodeVo, error) {
	counts, err := r.rdb.HGetAll(ctx, rediskey.UnknownCodeCountKey()).Result()
	if err != nil {
		return nil, err
	}
	lastSeen, err := r.rdb.HGetAll(ctx, rediskey.UnknownCodeLastSeenKey()).Result()
	if err != nil {
		return nil, err
	}
	sources, err := r.rdb.HGetAll(ctx, rediskey.UnknownCodeSourceKey()).Result()
	if err != nil {
		return nil, err
	}

	list := make([]dto.UnknownCodeVo, 0, len(counts))
	for token, c := range counts {
		count, _ := strconv.ParseInt(c, 10, 64)
		seen, _ := strconv.ParseInt(lastSeen[token], 10, 64)
		list = append(list, dto.UnknownCodeVo{
			Code:       token,
			Count:      count,
			LastSeenAt: seen,
			Source:     sources[token],
		})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Code < list[j].Code
	})
	return list, nil
}

// Remove 错误码已补充进目录后清除记录
func (r *UnknownCodeRepo) Remove(ctx context.Context, token string) error {
	pipe := r.rdb.TxPipeline()
	pipe.HDel(ctx, rediskey.UnknownCodeCountKey(), token)
	pipe.HDel(ctx, rediskey.UnknownCodeLastSeenKey(), token)
	pipe.HDel(ctx, rediskey.UnknownCodeSourceKey(), token)
	_, err := pipe.Exec(ctx)
	return err
}
