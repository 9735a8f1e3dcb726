package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// MessageRepository 消息数据访问
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository 创建消息仓库
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateChannelMessage 写入频道消息
// 消息本体与投递记录在同一事务内写入
func (r *MessageRepository) CreateChannelMessage(ctx context.Context, message *model.Message, channelID int64) error {
	return WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertMessage(ctx, tx, message); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO channel_messages (message_id, channel_id) VALUES ($1, $2)`,
			message.ID, channelID,
		)
		return err
	})
}

// CreateUserMessage 写入私信
func (r *MessageRepository) CreateUserMessage(ctx context.Context, message *model.Message, receiverID int64) error {
	return WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertMessage(ctx, tx, message); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO user_messages (message_id, receiver_id) VALUES ($1, $2)`,
			message.ID, receiverID,
		)
		return err
	})
}

func insertMessage(ctx context.Context, q Querier, message *model.Message) error {
	query := `
		INSERT INTO messages (id, author_id, content, create_at, update_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING create_at, update_at
	`
	return q.QueryRow(ctx, query,
		message.ID,
		message.AuthorID,
		message.Content,
	).Scan(&message.CreateAt, &message.UpdateAt)
}

// GetByID 通过 ID 获取消息，不包含已删除消息
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	query := `
		SELECT id, author_id, content, create_at, update_at
		FROM messages WHERE id = $1 AND deleted_at IS NULL
	`
	message := &model.Message{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.AuthorID,
		&message.Content,
		&message.CreateAt,
		&message.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, err
	}
	return message, nil
}

// UpdateContent 更新消息内容
func (r *MessageRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	query := `UPDATE messages SET content = $2, update_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id, content)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// SoftDelete 逻辑删除消息
func (r *MessageRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE messages SET deleted_at = NOW(), update_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// GetChannelMessages 获取频道消息列表（含作者信息）
func (r *MessageRepository) GetChannelMessages(ctx context.Context, channelID int64) ([]*model.MessageWithAuthor, error) {
	query := `
		SELECT m.id, m.author_id, m.content, m.create_at, m.update_at, u.username, u.avatar
		FROM channel_messages cm
		JOIN messages m ON m.id = cm.message_id
		JOIN users u ON u.id = m.author_id
		WHERE cm.channel_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.create_at ASC
	`
	return r.queryMessages(ctx, query, channelID)
}

// GetUserMessages 获取用户收到的私信列表（含作者信息）
func (r *MessageRepository) GetUserMessages(ctx context.Context, receiverID int64) ([]*model.MessageWithAuthor, error) {
	query := `
		SELECT m.id, m.author_id, m.content, m.create_at, m.update_at, u.username, u.avatar
		FROM user_messages um
		JOIN messages m ON m.id = um.message_id
		JOIN users u ON u.id = m.author_id
		WHERE um.receiver_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.create_at ASC
	`
	return r.queryMessages(ctx, query, receiverID)
}

func (r *MessageRepository) queryMessages(ctx context.Context, query string, targetID int64) ([]*model.MessageWithAuthor, error) {
	rows, err := r.db.Query(ctx, query, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.MessageWithAuthor
	for rows.Next() {
		m := &model.MessageWithAuthor{}
		err := rows.Scan(
			&m.ID,
			&m.AuthorID,
			&m.Content,
			&m.CreateAt,
			&m.UpdateAt,
			&m.AuthorUsername,
			&m.AuthorAvatar,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
