package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const goodColumns = "id, name, type, cost, process_time, archived, vendor, price, properties, components"

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Good, error) {
	query := `
        SELECT ` + goodColumns + `
        FROM goods
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoods(rows)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*models.Good, error) {
	query := `
        SELECT ` + goodColumns + `
        FROM goods
        WHERE id = $1`

	var good models.Good
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&good.ID,
		&good.Name,
		&good.Type,
		&good.Cost,
		&good.ProcessTime,
		&good.Archived,
		&good.Vendor,
		&good.Price,
		&good.Properties,
		&good.Components,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &good, nil
}

func (r *PostgresRepository) ListByType(ctx context.Context, goodType models.GoodType, includeArchived bool) ([]models.Good, error) {
	query := `
        SELECT ` + goodColumns + `
        FROM goods
        WHERE type = $1 AND ($2 OR NOT archived)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, goodType, includeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoods(rows)
}

func (r *PostgresRepository) Insert(ctx context.Context, good *models.Good) error {
	query := `
        INSERT INTO goods (name, type, cost, process_time, archived, vendor, price, properties, components)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		good.Name,
		good.Type,
		good.Cost,
		good.ProcessTime,
		good.Archived,
		good.Vendor,
		good.Price,
		good.Properties,
		good.Components,
	).Scan(&good.ID)
}

func (r *PostgresRepository) SetArchived(ctx context.Context, id int, archived bool) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE goods
        SET archived = $2
        WHERE id = $1`,
		id, archived)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) Update(ctx context.Context, good *models.Good) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE goods
        SET name = $2, type = $3, cost = $4, process_time = $5,
            vendor = $6, price = $7, properties = $8, components = $9
        WHERE id = $1`,
		good.ID,
		good.Name,
		good.Type,
		good.Cost,
		good.ProcessTime,
		good.Vendor,
		good.Price,
		good.Properties,
		good.Components,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanGoods(rows pgx.Rows) ([]models.Good, error) {
	var goods []models.Good
	for rows.Next() {
		var good models.Good
		err := rows.Scan(
			&good.ID,
			&good.Name,
			&good.Type,
			&good.Cost,
			&good.ProcessTime,
			&good.Archived,
			&good.Vendor,
			&good.Price,
			&good.Properties,
			&good.Components,
		)
		if err != nil {
			return nil, err
		}
		goods = append(goods, good)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goods, nil
}
