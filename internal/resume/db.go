package resume

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// OpenDB opens the engine's sqlite file with sane single-writer defaults.
func OpenDB(path string) (*sql.DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return pool, nil
}
