package repositories

import (
	"context"
	"database/sql"
	"errors"

	"rodaBack/internal/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, email, password, created_at
    FROM admins
    WHERE email = ?`, email).Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

func (r *AdminRepository) CreateSession(ctx context.Context, s models.Session) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO sessions (id, admin_id, refresh_token, expires_at)
    VALUES (?, ?, ?, ?)`, s.ID, s.AdminID, s.RefreshToken, s.ExpiresAt)
	return err
}

func (r *AdminRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx, `SELECT id, admin_id, refresh_token, expires_at
    FROM sessions
    WHERE refresh_token = ?`, refreshToken).Scan(&s.ID, &s.AdminID, &s.RefreshToken, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoSession
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *AdminRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE refresh_token = ?`, refreshToken)
	return err
}

func (r *AdminRepository) GetAdminByID(ctx context.Context, id int) (models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, email, password, created_at
    FROM admins
    WHERE id = ?`, id).Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}
