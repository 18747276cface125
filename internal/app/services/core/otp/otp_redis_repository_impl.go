package otp

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

type otpRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

var (
	otpRepositoryInstance contracts.OtpChallengeRepository
	onceOtpRepository     sync.Once
)

func NewOtpRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.OtpChallengeRepository {
	onceOtpRepository.Do(func() {
		otpRepositoryInstance = &otpRedisRepository{
			RedisRepository: redisRepository,
			TTL:             ttl,
		}
	})
	return otpRepositoryInstance
}

func otpKey(recipient string) string {
	return constvars.RedisKeyOtpPrefix + recipient
}

// Save uses a plain SET, so a fresh challenge replaces whatever the recipient
// had before. The key TTL enforces the challenge window.
func (r *otpRedisRepository) Save(ctx context.Context, challenge *models.OtpChallenge) error {
	return r.RedisRepository.Set(ctx, otpKey(challenge.Recipient), challenge, r.TTL)
}

func (r *otpRedisRepository) Find(ctx context.Context, recipient string) (*models.OtpChallenge, error) {
	data, err := r.RedisRepository.Get(ctx, otpKey(recipient))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	challenge := new(models.OtpChallenge)
	err = json.Unmarshal([]byte(data), challenge)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return challenge, nil
}

func (r *otpRedisRepository) Delete(ctx context.Context, recipient string) error {
	return r.RedisRepository.Delete(ctx, otpKey(recipient))
}
