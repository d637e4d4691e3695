// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/database/schema"
	"github.com/taibuivan/bibble/internal/platform/dberr"
)

const resourceName = "User"

// PostgresRepository implements [Repository] on users.account.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row pgx.CollectableRow) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanUserWithHash(row pgx.CollectableRow) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt, &u.PasswordHash)
	return u, err
}

func (repository *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC;
	`,
		strings.Join(schema.UserAccount.Columns(), ", "),
		schema.UserAccount.Table,
		schema.UserAccount.Username,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_users")
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "scan_user")
	}
	return users, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`,
		strings.Join(schema.UserAccount.Columns(), ", "),
		schema.UserAccount.Table,
		schema.UserAccount.ID,
	)

	rows, err := repository.db.Query(ctx, query, id)
	if err != nil {
		return User{}, dberr.Wrap(err, resourceName, "get_user")
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	return user, dberr.Wrap(err, resourceName, "get_user")
}

func (repository *PostgresRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE lower(%s) = lower($1) OR lower(%s) = lower($1)
		LIMIT 1;
	`,
		strings.Join(schema.UserAccount.Columns(), ", "),
		schema.UserAccount.Password,
		schema.UserAccount.Table,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
	)

	rows, err := repository.db.Query(ctx, query, login)
	if err != nil {
		return User{}, dberr.Wrap(err, resourceName, "find_user_by_login")
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUserWithHash)
	return user, dberr.Wrap(err, resourceName, "find_user_by_login")
}

func (repository *PostgresRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s;
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
		schema.UserAccount.Password,
		schema.UserAccount.Role,
		schema.UserAccount.IsActive,
		schema.UserAccount.CreatedAt,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_user")
}

func (repository *PostgresRepository) Update(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
		schema.UserAccount.Role,
		schema.UserAccount.IsActive,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.CreatedAt,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, resourceName, "update_user")
}

func (repository *PostgresRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = now() WHERE %s = $1;`,
		schema.UserAccount.Table,
		schema.UserAccount.Password,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)
	return repository.exec(ctx, "update_user_password", query, id, hash)
}

func (repository *PostgresRepository) TouchLogin(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1;`,
		schema.UserAccount.Table,
		schema.UserAccount.LastLoginAt,
		schema.UserAccount.ID,
	)
	return repository.exec(ctx, "touch_user_login", query, id)
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, schema.UserAccount.Table, schema.UserAccount.ID)
	return repository.exec(ctx, "delete_user", query, id)
}

// exec runs a single-row statement and reports NotFound when nothing matched.
func (repository *PostgresRepository) exec(ctx context.Context, action, query string, args ...any) error {
	tag, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, resourceName, action)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
