package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// ServerRepository 服务器数据访问
type ServerRepository struct {
	db *pgxpool.Pool
}

// NewServerRepository 创建服务器仓库
func NewServerRepository(db *pgxpool.Pool) *ServerRepository {
	return &ServerRepository{db: db}
}

// Create 创建服务器
// 服务器、默认频道和群主成员记录在同一事务内写入，任一失败整体回滚
func (r *ServerRepository) Create(ctx context.Context, server *model.Server, defaultChannel *model.Channel, ownerMember *model.ServerMember) error {
	return WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO servers (id, name, owner_id, avatar, create_at, update_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING create_at, update_at
		`
		if err := tx.QueryRow(ctx, query,
			server.ID,
			server.Name,
			server.OwnerID,
			server.Avatar,
		).Scan(&server.CreateAt, &server.UpdateAt); err != nil {
			return err
		}

		query = `
			INSERT INTO channels (id, server_id, name, create_at, update_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING create_at, update_at
		`
		if err := tx.QueryRow(ctx, query,
			defaultChannel.ID,
			defaultChannel.ServerID,
			defaultChannel.Name,
		).Scan(&defaultChannel.CreateAt, &defaultChannel.UpdateAt); err != nil {
			return err
		}

		query = `
			INSERT INTO server_members (id, server_id, user_id, create_at, update_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING create_at, update_at
		`
		return tx.QueryRow(ctx, query,
			ownerMember.ID,
			ownerMember.ServerID,
			ownerMember.UserID,
		).Scan(&ownerMember.CreateAt, &ownerMember.UpdateAt)
	})
}

// GetByID 通过 ID 获取服务器，包含成员集合与未删除的频道
func (r *ServerRepository) GetByID(ctx context.Context, id int64) (*model.Server, error) {
	query := `
		SELECT id, name, owner_id, avatar, create_at, update_at
		FROM servers WHERE id = $1 AND deleted_at IS NULL
	`
	server := &model.Server{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&server.ID,
		&server.Name,
		&server.OwnerID,
		&server.Avatar,
		&server.CreateAt,
		&server.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, err
	}

	if server.Members, err = r.getMembers(ctx, id); err != nil {
		return nil, err
	}
	if server.Channels, err = r.getChannels(ctx, id); err != nil {
		return nil, err
	}
	return server, nil
}

func (r *ServerRepository) getMembers(ctx context.Context, serverID int64) ([]*model.ServerMember, error) {
	query := `
		SELECT id, server_id, user_id, create_at, update_at
		FROM server_members WHERE server_id = $1
		ORDER BY create_at ASC
	`
	rows, err := r.db.Query(ctx, query, serverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.ServerMember
	for rows.Next() {
		m := &model.ServerMember{}
		if err := rows.Scan(&m.ID, &m.ServerID, &m.UserID, &m.CreateAt, &m.UpdateAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *ServerRepository) getChannels(ctx context.Context, serverID int64) ([]*model.Channel, error) {
	query := `
		SELECT id, server_id, name, create_at, update_at
		FROM channels WHERE server_id = $1 AND deleted_at IS NULL
		ORDER BY create_at ASC
	`
	rows, err := r.db.Query(ctx, query, serverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []*model.Channel
	for rows.Next() {
		c := &model.Channel{}
		if err := rows.Scan(&c.ID, &c.ServerID, &c.Name, &c.CreateAt, &c.UpdateAt); err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}

// Update 更新服务器信息
func (r *ServerRepository) Update(ctx context.Context, server *model.Server) error {
	query := `
		UPDATE servers SET name = $2, avatar = $3, update_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(ctx, query, server.ID, server.Name, server.Avatar)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrServerNotFound
	}
	return nil
}

// SoftDelete 逻辑删除服务器
func (r *ServerRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE servers SET deleted_at = NOW(), update_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrServerNotFound
	}
	return nil
}

// GetUserServers 获取用户加入的服务器列表
func (r *ServerRepository) GetUserServers(ctx context.Context, userID int64) ([]*model.Server, error) {
	query := `
		SELECT s.id, s.name, s.owner_id, s.avatar, s.create_at, s.update_at
		FROM servers s
		JOIN server_members m ON s.id = m.server_id
		WHERE m.user_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.create_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servers []*model.Server
	for rows.Next() {
		s := &model.Server{}
		err := rows.Scan(&s.ID, &s.Name, &s.OwnerID, &s.Avatar, &s.CreateAt, &s.UpdateAt)
		if err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}
	return servers, rows.Err()
}
