package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// UserRepository 用户数据访问
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, username, password_hash, avatar, create_at, update_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Avatar,
		&user.CreateAt,
		&user.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create 创建用户
// email/username 的唯一性由部分唯一索引兜底，冲突时返回 ErrUserExists
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, avatar, create_at, update_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING create_at, update_at
	`
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Avatar,
	).Scan(&user.CreateAt, &user.UpdateAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrUserExists.Wrap(err)
		}
		return err
	}
	return nil
}

// GetByID 通过 ID 获取用户，不包含已删除用户
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail 通过邮箱获取用户
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByUsername 通过用户名获取用户
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// GetByEmailOrUsername 通过邮箱或用户名获取用户（登录用）
func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE (email = $1 OR username = $2) AND deleted_at IS NULL
	`
	return scanUser(r.db.QueryRow(ctx, query, email, username))
}

// Update 更新用户信息
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users SET username = $2, avatar = $3, update_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Avatar)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrUserExists.Wrap(err)
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SoftDelete 逻辑删除用户
func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE users SET deleted_at = NOW(), update_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Search 按用户名模糊搜索用户
func (r *UserRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]*model.User, error) {
	query := `
		SELECT id, email, username, avatar, create_at, update_at
		FROM users
		WHERE username ILIKE $1 AND deleted_at IS NULL
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, "%"+keyword+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Username,
			&user.Avatar,
			&user.CreateAt,
			&user.UpdateAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
