package chat

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/exceptions"
)

type chatStepRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

var (
	chatStepRepositoryInstance contracts.ChatStepRepository
	onceChatStepRepository     sync.Once
)

func NewChatStepRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.ChatStepRepository {
	onceChatStepRepository.Do(func() {
		chatStepRepositoryInstance = &chatStepRedisRepository{
			RedisRepository: redisRepository,
			TTL:             ttl,
		}
	})
	return chatStepRepositoryInstance
}

func stepKey(identity string) string {
	return constvars.RedisKeyChatStepPrefix + identity
}

func (r *chatStepRedisRepository) TryBegin(ctx context.Context, step *models.ChatStep) (bool, error) {
	return r.RedisRepository.TrySetNX(ctx, stepKey(step.Identity), step, r.TTL)
}

// Get treats an expired marker as absent, the identity falls back to
// stateless handling even when the key has not been evicted yet.
func (r *chatStepRedisRepository) Get(ctx context.Context, identity string) (*models.ChatStep, error) {
	data, err := r.RedisRepository.Get(ctx, stepKey(identity))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	step := new(models.ChatStep)
	err = json.Unmarshal([]byte(data), step)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if step.Expired(time.Now()) {
		r.RedisRepository.Delete(ctx, stepKey(identity))
		return nil, nil
	}
	return step, nil
}

func (r *chatStepRedisRepository) Clear(ctx context.Context, identity string) error {
	return r.RedisRepository.Delete(ctx, stepKey(identity))
}
