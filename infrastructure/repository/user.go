package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/sellkit/listing-assistant-api/infrastructure/database/postgres"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	GetByEmail(email string) (*domain.User, error)
	GetByID(id int) (*domain.User, error)
	UpdateLastLogin(id int, at time.Time) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"email": email})
}

func (r *userRepository) GetByID(id int) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"id": id})
}

func (r *userRepository) getBy(condition squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "role", "active", "created_at", "last_login_at").
		From(usersTable).
		Where(condition).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user query")
	}

	user := &domain.User{}
	var lastLogin sql.NullTime

	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning user")
	}

	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	return user, nil
}

func (r *userRepository) UpdateLastLogin(id int, at time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Update(usersTable).
		Set("last_login_at", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building last login update")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "updating last login")
	}

	return nil
}
