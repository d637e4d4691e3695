// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/database/schema"
	"github.com/taibuivan/bibble/internal/platform/dberr"
)

const productResource = "Product"

func scanProduct(row pgx.CollectableRow) (hierarchy.Product, error) {
	var p hierarchy.Product
	err := row.Scan(&p.ID, &p.Type, &p.Slug, &p.Title, &p.Description, &p.ContentType, &p.FreePages, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

/*
ListProducts returns one page of products and the total matching count.

Description: Newest first. Types and status are optional filters.
*/
func (repository *PostgresRepository) ListProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]hierarchy.Product, int, error) {
	var (
		conditions []string
		args       []any
	)

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		args = append(args, types)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", schema.ContentProduct.Type, len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.ContentProduct.Status, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s;`, schema.ContentProduct.Table, where)
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, productResource, "count_products")
	}

	query := selectFrom(schema.ContentProduct.Columns(), schema.ContentProduct.Table) + where +
		fmt.Sprintf(" ORDER BY %s DESC, %s DESC", schema.ContentProduct.CreatedAt, schema.ContentProduct.ID) +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2) + ";"
	args = append(args, limit, offset)

	products, err := collect(ctx, repository.db, productResource, "list_products", scanProduct, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (repository *PostgresRepository) GetProduct(ctx context.Context, id string) (hierarchy.Product, error) {
	query := selectFrom(schema.ContentProduct.Columns(), schema.ContentProduct.Table) +
		fmt.Sprintf(" WHERE %s = $1;", schema.ContentProduct.ID)
	return one(ctx, repository.db, productResource, "get_product", scanProduct, query, id)
}

func (repository *PostgresRepository) CreateProduct(ctx context.Context, p *hierarchy.Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s;
	`,
		schema.ContentProduct.Table,
		schema.ContentProduct.ID, schema.ContentProduct.Type, schema.ContentProduct.Slug,
		schema.ContentProduct.Title, schema.ContentProduct.Description, schema.ContentProduct.ContentType,
		schema.ContentProduct.FreePages, schema.ContentProduct.Status,
		schema.ContentProduct.CreatedAt, schema.ContentProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		p.ID, p.Type, p.Slug, p.Title, p.Description, p.ContentType, p.FreePages, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, productResource, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(ctx context.Context, p *hierarchy.Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.ContentProduct.Table,
		schema.ContentProduct.Type, schema.ContentProduct.Slug, schema.ContentProduct.Title,
		schema.ContentProduct.Description, schema.ContentProduct.ContentType, schema.ContentProduct.FreePages,
		schema.ContentProduct.Status, schema.ContentProduct.UpdatedAt,
		schema.ContentProduct.ID,
		schema.ContentProduct.CreatedAt, schema.ContentProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		p.ID, p.Type, p.Slug, p.Title, p.Description, p.ContentType, p.FreePages, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, productResource, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	return remove(ctx, repository.db, productResource, "delete_product", schema.ContentProduct.Table, schema.ContentProduct.ID, id)
}
