package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRegistry struct {
	db *pgxpool.Pool
}

func NewPostgresRegistry(db *pgxpool.Pool) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

func (r *PostgresRegistry) FindByID(ctx context.Context, id string) (*Principal, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, email, password, role, is_active
		FROM admins WHERE id=$1
	`, id))
}

func (r *PostgresRegistry) FindByEmail(ctx context.Context, email string) (*Principal, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, email, password, role, is_active
		FROM admins WHERE email=$1
	`, email))
}

// EnsureOwner creates the first OWNER account on an empty registry.
// Called once at startup; a populated registry is left untouched.
func (r *PostgresRegistry) EnsureOwner(ctx context.Context, email, passwordHash string) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (id, email, password, role, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
	`, uuid.New().String(), email, passwordHash, RoleOwner)
	return err
}

func (r *PostgresRegistry) scanOne(row pgx.Row) (*Principal, error) {
	p := &Principal{}
	err := row.Scan(&p.ID, &p.Email, &p.Password, &p.Role, &p.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
