package identity

import (
	"context"
	"database/sql"
	"fmt"
)

// User is one registered employee.
type User struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	CPF     string `json:"cpf"`
	Cargo   string `json:"cargo"`
	Email   string `json:"email"`
	Identif string `json:"identif"`
}

// UserRepository provides access to registered employees.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID, returns nil if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, COALESCE(nome, ''), COALESCE(cpf, ''), COALESCE(cargo, ''), COALESCE(email, ''), COALESCE(identif, '')
		FROM users
		WHERE id = ?
	`

	var u User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Nome,
		&u.CPF,
		&u.Cargo,
		&u.Email,
		&u.Identif,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// Create inserts a user and returns it with the assigned ID.
func (r *UserRepository) Create(ctx context.Context, u User) (*User, error) {
	query := `
		INSERT INTO users (nome, cpf, cargo, email, identif)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(ctx, query, u.Nome, u.CPF, u.Cargo, u.Email, u.Identif)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted id: %w", err)
	}
	u.ID = id
	return &u, nil
}

// List returns all users ordered by ID.
func (r *UserRepository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, COALESCE(nome, ''), COALESCE(cpf, ''), COALESCE(cargo, ''), COALESCE(email, ''), COALESCE(identif, '')
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Nome, &u.CPF, &u.Cargo, &u.Email, &u.Identif); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
