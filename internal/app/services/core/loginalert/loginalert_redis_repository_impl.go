package loginalert

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/exceptions"
)

// resolvePendingScript transitions the status field only while it still
// reads pending. Runs atomically on the server, so of two racing resolvers
// exactly one sees 1 and the other sees 0.
var resolvePendingScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status == false then
  return -1
end
if status == 'pending' then
  redis.call('HSET', KEYS[1], 'status', ARGV[1])
  return 1
end
return 0
`)

type loginSessionRedisRepository struct {
	Client    *redis.Client
	TTL       time.Duration
	Retention time.Duration
}

var (
	loginSessionRepositoryInstance contracts.LoginSessionRepository
	onceLoginSessionRepository     sync.Once
)

func NewLoginSessionRedisRepository(client *redis.Client, ttl, retention time.Duration) contracts.LoginSessionRepository {
	onceLoginSessionRepository.Do(func() {
		loginSessionRepositoryInstance = &loginSessionRedisRepository{
			Client:    client,
			TTL:       ttl,
			Retention: retention,
		}
	})
	return loginSessionRepositoryInstance
}

func sessionKey(alertID string) string {
	return constvars.RedisKeyLoginSessionPrefix + alertID
}

// Create stores the session as a hash. The key outlives the logical expiry
// by the retention window so late taps observe already-resolved or expired
// instead of not-found.
func (r *loginSessionRedisRepository) Create(ctx context.Context, session *models.LoginSession) error {
	contextJSON, err := json.Marshal(session.Context)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	key := sessionKey(session.AlertID)
	fields := map[string]interface{}{
		"owner":       session.OwnerIdentity,
		"status":      session.Status,
		"context":     string(contextJSON),
		"created_at":  session.CreatedAt.Format(time.RFC3339Nano),
		"expires_at":  session.ExpiresAt.Format(time.RFC3339Nano),
		"message_ref": session.MessageRef,
	}

	pipe := r.Client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, r.TTL+r.Retention)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *loginSessionRedisRepository) Find(ctx context.Context, alertID string) (*models.LoginSession, error) {
	fields, err := r.Client.HGetAll(ctx, sessionKey(alertID)).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var loginContext models.LoginContext
	err = json.Unmarshal([]byte(fields["context"]), &loginContext)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return &models.LoginSession{
		AlertID:       alertID,
		OwnerIdentity: fields["owner"],
		Context:       loginContext,
		Status:        fields["status"],
		CreatedAt:     createdAt,
		ExpiresAt:     expiresAt,
		MessageRef:    fields["message_ref"],
	}, nil
}

func (r *loginSessionRedisRepository) ResolvePending(ctx context.Context, alertID, newStatus string) (contracts.CASResult, error) {
	result, err := resolvePendingScript.Run(ctx, r.Client, []string{sessionKey(alertID)}, newStatus).Int()
	if err != nil {
		return contracts.CASNotFound, exceptions.ErrRedisEval(err)
	}

	switch result {
	case 1:
		return contracts.CASCommitted, nil
	case 0:
		return contracts.CASAlreadyResolved, nil
	default:
		return contracts.CASNotFound, nil
	}
}
