package store

import (
	"context"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/data/redisStore"
	"github.com/adikol/docvoice/pkg/logger_i"
)

// RedisProgressStore keeps the pipeline's progress messages as a redis list
// under the job id, so the status endpoint can replay them in order.
type RedisProgressStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisProgressStore(ctx context.Context) *RedisProgressStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisProgressStore)
	if inner == nil {
		return nil
	}
	return &RedisProgressStore{
		store:  inner,
		logger: logger_i.NewLogger("ProgressStore"),
	}
}

func (s *RedisProgressStore) AppendProgress(ctx context.Context, jobId string, message string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "job Id", jobId)
	if err := s.store.ListPush(ctx, jobId, message); err != nil {
		log.Error("error appending progress", "error", err)
		return err
	}
	if err := s.store.Expire(ctx, jobId, config.RedisProgressStoreTTL); err != nil {
		log.Error("error setting progress TTL", "error", err)
	}
	log.Debug("appended progress", "message", message)
	return nil
}

func (s *RedisProgressStore) GetProgress(ctx context.Context, jobId string) ([]string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "job Id", jobId)
	res, err := s.store.ListGetAll(ctx, jobId)
	if err != nil {
		log.Error("error getting progress", "error", err)
		return nil, err
	}
	return res, nil
}

func TestProgressStore(store *redisStore.Store) *RedisProgressStore {
	return &RedisProgressStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
