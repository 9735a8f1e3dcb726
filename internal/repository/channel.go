package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// ChannelRepository 频道数据访问
type ChannelRepository struct {
	db *pgxpool.Pool
}

// NewChannelRepository 创建频道仓库
func NewChannelRepository(db *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create 创建频道
func (r *ChannelRepository) Create(ctx context.Context, channel *model.Channel) error {
	query := `
		INSERT INTO channels (id, server_id, name, create_at, update_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING create_at, update_at
	`
	return r.db.QueryRow(ctx, query,
		channel.ID,
		channel.ServerID,
		channel.Name,
	).Scan(&channel.CreateAt, &channel.UpdateAt)
}

// GetByID 通过 ID 获取频道，不包含已删除频道
func (r *ChannelRepository) GetByID(ctx context.Context, id int64) (*model.Channel, error) {
	query := `
		SELECT id, server_id, name, create_at, update_at
		FROM channels WHERE id = $1 AND deleted_at IS NULL
	`
	channel := &model.Channel{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&channel.ID,
		&channel.ServerID,
		&channel.Name,
		&channel.CreateAt,
		&channel.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, err
	}
	return channel, nil
}

// BelongsToServer 检查频道是否属于指定服务器
// 不过滤 deleted_at：历史记录仍可通过外键归属到服务器
func (r *ChannelRepository) BelongsToServer(ctx context.Context, serverID, channelID int64) (bool, error) {
	var belongs bool
	query := `SELECT EXISTS(SELECT 1 FROM channels WHERE id = $1 AND server_id = $2)`
	err := r.db.QueryRow(ctx, query, channelID, serverID).Scan(&belongs)
	return belongs, err
}

// Update 更新频道信息
func (r *ChannelRepository) Update(ctx context.Context, channel *model.Channel) error {
	query := `
		UPDATE channels SET name = $2, update_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(ctx, query, channel.ID, channel.Name)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrChannelNotFound
	}
	return nil
}

// SoftDelete 逻辑删除频道
func (r *ChannelRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE channels SET deleted_at = NOW(), update_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrChannelNotFound
	}
	return nil
}
