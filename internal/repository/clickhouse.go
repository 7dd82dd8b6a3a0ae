package repository

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

type ClickhouseRepository struct {
	conn clickhouse.Conn
}

func NewClickhouseRepository(conn clickhouse.Conn) *ClickhouseRepository {
	return &ClickhouseRepository{conn: conn}
}

func (r *ClickhouseRepository) LogGoodEvent(ctx context.Context, event *models.GoodEvent) error {
	query := `
        INSERT INTO goods_log (
            Id, Name, Type, Cost, Archived, EventTime
        ) VALUES (?, ?, ?, ?, ?, ?)`

	return r.conn.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Type,
		event.Cost,
		event.Archived,
		event.EventTime,
	)
}
