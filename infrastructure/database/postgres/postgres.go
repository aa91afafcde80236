package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/franbz1/hotel-san-miguel/internal/config"
	_ "github.com/lib/pq"
)

// Connection é o pool de conexões compartilhado pelos repositórios
type Connection struct {
	*sql.DB
}

var _ Queryer = (*Connection)(nil)

// NewConnection abre o pool e só retorna depois de um ping bem-sucedido
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
