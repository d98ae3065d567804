package repo

import (
	"context"
	"database/sql"
)

// Preferences are per-user calculation defaults applied by front ends
// when a request omits them. Computed results are never stored.
type Preferences struct {
	Method     string  `json:"default_method"`
	Rho        float64 `json:"default_rho"`
	Mu         float64 `json:"default_mu"`
	G          float64 `json:"default_g"`
	RoughnessM float64 `json:"default_roughness_m"`
}

type Profile struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Preferences
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdatePreferences(ctx context.Context, id int, p Preferences) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := `SELECT id, login, email,
		COALESCE(default_method, ''),
		COALESCE(default_rho, 0),
		COALESCE(default_mu, 0),
		COALESCE(default_g, 0),
		COALESCE(default_roughness_m, 0)
		FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email,
		&p.Method, &p.Rho, &p.Mu, &p.G, &p.RoughnessM,
	)
	return p, err
}

func (r *PostgresUserRepository) UpdatePreferences(ctx context.Context, id int, p Preferences) error {
	query := `UPDATE users SET
		default_method=$2,
		default_rho=$3,
		default_mu=$4,
		default_g=$5,
		default_roughness_m=$6
		WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id, p.Method, p.Rho, p.Mu, p.G, p.RoughnessM)
	return err
}
