package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type AppSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAppSessionStore(rdb *redis.Client, ttl time.Duration) *AppSessionStore {
	return &AppSessionStore{rdb: rdb, ttl: ttl}
}

type AppSession struct {
	AdminID   uint   `json:"aid"`
	Username  string `json:"usr"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

func key(id string) string        { return fmt.Sprintf("app:sess:%s", id) }
func adminSetKey(aid uint) string { return fmt.Sprintf("app:admin_sessions:%d", aid) }

func (s *AppSessionStore) Create(ctx context.Context, id string, adminID uint, username string) error {
	now := time.Now()
	b, _ := json.Marshal(AppSession{
		AdminID:   adminID,
		Username:  username,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(id), b, s.ttl)
	pipe.SAdd(ctx, adminSetKey(adminID), id)
	pipe.Expire(ctx, adminSetKey(adminID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *AppSessionStore) Get(ctx context.Context, id string) (*AppSession, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var as AppSession
	if err := json.Unmarshal(b, &as); err != nil {
		return nil, err
	}
	return &as, nil
}

func (s *AppSessionStore) Delete(ctx context.Context, id string) error {
	as, _ := s.Get(ctx, id) // 忽略失败
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(id))
	if as != nil {
		pipe.SRem(ctx, adminSetKey(as.AdminID), id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForAdmin drops every live session for the admin, e.g. after a
// credential change.
func (s *AppSessionStore) RevokeAllForAdmin(ctx context.Context, adminID uint) error {
	ids, err := s.rdb.SMembers(ctx, adminSetKey(adminID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, sid := range ids {
		pipe.Del(ctx, key(sid))
	}
	pipe.Del(ctx, adminSetKey(adminID))
	_, err = pipe.Exec(ctx)
	return err
}
