package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// FriendRepository 好友关系数据访问
// 一对用户之间不区分方向，最多一条记录，由
// (LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id))
// 上的唯一索引兜底
type FriendRepository struct {
	db *pgxpool.Pool
}

// NewFriendRepository 创建好友关系仓库
func NewFriendRepository(db *pgxpool.Pool) *FriendRepository {
	return &FriendRepository{db: db}
}

// Create 创建好友请求记录（Accepted = false）
// 无序对唯一索引冲突时返回 ErrAlreadyRelated
func (r *FriendRepository) Create(ctx context.Context, friend *model.Friend) error {
	query := `
		INSERT INTO friends (id, sender_id, receiver_id, accepted, create_at, update_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING create_at, update_at
	`
	err := r.db.QueryRow(ctx, query,
		friend.ID,
		friend.SenderID,
		friend.ReceiverID,
		friend.Accepted,
	).Scan(&friend.CreateAt, &friend.UpdateAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyRelated.Wrap(err)
		}
		return err
	}
	return nil
}

// GetByPair 查询一对用户之间的关系记录，不区分方向
// 不存在时返回 (nil, nil)
func (r *FriendRepository) GetByPair(ctx context.Context, userID, otherID int64) (*model.Friend, error) {
	query := `
		SELECT id, sender_id, receiver_id, accepted, create_at, update_at
		FROM friends
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	`
	friend := &model.Friend{}
	err := r.db.QueryRow(ctx, query, userID, otherID).Scan(
		&friend.ID,
		&friend.SenderID,
		&friend.ReceiverID,
		&friend.Accepted,
		&friend.CreateAt,
		&friend.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return friend, nil
}

// Accept 将关系置为已接受
func (r *FriendRepository) Accept(ctx context.Context, id int64) error {
	query := `UPDATE friends SET accepted = TRUE, update_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotRelated
	}
	return nil
}

// Delete 物理删除关系记录
// 好友关系是唯一使用硬删除的实体：无序对记录直接移除
func (r *FriendRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM friends WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotRelated
	}
	return nil
}

// GetFriends 获取已接受关系中的对端用户列表，不区分谁是发起方
func (r *FriendRepository) GetFriends(ctx context.Context, userID int64) ([]*model.User, error) {
	query := `
		SELECT u.id, u.email, u.username, u.avatar, u.create_at, u.update_at
		FROM friends f
		JOIN users u ON u.id = CASE WHEN f.sender_id = $1 THEN f.receiver_id ELSE f.sender_id END
		WHERE (f.sender_id = $1 OR f.receiver_id = $1)
		  AND f.accepted = TRUE
		  AND u.deleted_at IS NULL
		ORDER BY f.create_at DESC
	`
	return r.queryUsers(ctx, query, userID)
}

// GetReceivedRequests 获取待处理的收到的好友请求对应的发送方用户
func (r *FriendRepository) GetReceivedRequests(ctx context.Context, userID int64) ([]*model.User, error) {
	query := `
		SELECT u.id, u.email, u.username, u.avatar, u.create_at, u.update_at
		FROM friends f
		JOIN users u ON u.id = f.sender_id
		WHERE f.receiver_id = $1 AND f.accepted = FALSE AND u.deleted_at IS NULL
		ORDER BY f.create_at DESC
	`
	return r.queryUsers(ctx, query, userID)
}

// GetSentRequests 获取待处理的已发送好友请求对应的接收方用户
func (r *FriendRepository) GetSentRequests(ctx context.Context, userID int64) ([]*model.User, error) {
	query := `
		SELECT u.id, u.email, u.username, u.avatar, u.create_at, u.update_at
		FROM friends f
		JOIN users u ON u.id = f.receiver_id
		WHERE f.sender_id = $1 AND f.accepted = FALSE AND u.deleted_at IS NULL
		ORDER BY f.create_at DESC
	`
	return r.queryUsers(ctx, query, userID)
}

func (r *FriendRepository) queryUsers(ctx context.Context, query string, userID int64) ([]*model.User, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u := &model.User{}
		err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.Avatar, &u.CreateAt, &u.UpdateAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
