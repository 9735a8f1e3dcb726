package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// tokenUserPrefix 用户Token前缀: user:token:{user_id} -> accessToken
	tokenUserPrefix = "user:token:"
	// tokenInfoPrefix Token信息前缀: token:info:{accessToken} -> userInfo JSON
	tokenInfoPrefix = "token:info:"
)

// UserTokenInfo 存储在 Redis 中的会话信息
type UserTokenInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// TokenRepository 会话 Token 数据访问层
type TokenRepository struct {
	rdb *redis.Client
}

// NewTokenRepository 创建 Token 仓库
func NewTokenRepository(rdb *redis.Client) *TokenRepository {
	return &TokenRepository{rdb: rdb}
}

func buildUserTokenKey(userID int64) string {
	return fmt.Sprintf("%s%d", tokenUserPrefix, userID)
}

func buildTokenInfoKey(accessToken string) string {
	return tokenInfoPrefix + accessToken
}

// SaveToken 保存会话
// 同一用户重新登录会先失效旧 token，再写入新的
func (r *TokenRepository) SaveToken(ctx context.Context, info *UserTokenInfo, accessToken string, expire time.Duration) error {
	// 旧会话失效
	oldToken, err := r.rdb.Get(ctx, buildUserTokenKey(info.UserID)).Result()
	if err == nil && oldToken != "" {
		if err := r.rdb.Del(ctx, buildTokenInfoKey(oldToken)).Err(); err != nil {
			return err
		}
	} else if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	data, err := json.Marshal(info)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, buildUserTokenKey(info.UserID), accessToken, expire)
	pipe.Set(ctx, buildTokenInfoKey(accessToken), data, expire)
	_, err = pipe.Exec(ctx)
	return err
}

// GetTokenInfo 获取 token 对应的会话信息，不存在返回 (nil, nil)
func (r *TokenRepository) GetTokenInfo(ctx context.Context, accessToken string) (*UserTokenInfo, error) {
	data, err := r.rdb.Get(ctx, buildTokenInfoKey(accessToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	info := &UserTokenInfo{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

// DeleteToken 删除会话（登出）
func (r *TokenRepository) DeleteToken(ctx context.Context, userID int64, accessToken string) error {
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, buildUserTokenKey(userID))
	pipe.Del(ctx, buildTokenInfoKey(accessToken))
	_, err := pipe.Exec(ctx)
	return err
}
