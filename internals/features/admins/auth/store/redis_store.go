package store

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/auth/service"
)

const redisKeyPrefix = "admin_session:"

// RedisStore: setiap Set memperbarui TTL key sehingga sesi idle hilang sendiri.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, idleTimeout time.Duration) *RedisStore {
	// sedikit lebih panjang dari idle timeout; keputusan expired tetap di authority
	return &RedisStore{Client: client, TTL: idleTimeout + time.Minute}
}

func (s *RedisStore) Get(ctx context.Context, tokenHash string) (*model.AdminSessionModel, error) {
	raw, err := s.Client.Get(ctx, redisKeyPrefix+tokenHash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess model.AdminSessionModel
	if err := sonic.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	sess.AdminSessionTokenHash = tokenHash
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sess *model.AdminSessionModel) error {
	raw, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, redisKeyPrefix+sess.AdminSessionTokenHash, raw, s.TTL).Err()
}

// Touch memakai SET XX: key yang sudah dihapus logout tidak dihidupkan lagi.
func (s *RedisStore) Touch(ctx context.Context, sess *model.AdminSessionModel) error {
	raw, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	ok, err := s.Client.SetXX(ctx, redisKeyPrefix+sess.AdminSessionTokenHash, raw, s.TTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrSessionNotFound
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, tokenHash string) error {
	return s.Client.Del(ctx, redisKeyPrefix+tokenHash).Err()
}
