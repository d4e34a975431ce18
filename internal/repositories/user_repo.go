package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"angadBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var (
		user    models.User
		service sql.NullString
	)
	query := `
		SELECT id, username, password, role, service
		FROM users
		WHERE username = ?
	`
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role, &service,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if service.Valid {
		svc := models.ServiceType(service.String)
		user.Service = &svc
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `INSERT INTO users (username, password, role, service) VALUES (?, ?, ?, ?)`

	var service interface{}
	if user.Service != nil {
		service = string(*user.Service)
	}
	result, err := r.DB.ExecContext(ctx, query, user.Username, user.Password, user.Role, service)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, username, role, refresh_token, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		session.UserID, session.Username, session.Role, session.RefreshToken, session.ExpiresAt,
	)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
		SELECT user_id, username, role, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = ?
	`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Username, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
