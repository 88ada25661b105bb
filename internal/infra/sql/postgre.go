package sql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout   = 5 * time.Second
	_connectRetries = 10
	_retryDelay     = 5 * time.Second

	_passwordEnv = "PROFILING_SERVER_POSTGRES_PASSWORD"
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

func NewPosgreORM(dsn string, autoMigrate bool) (*DB, error) {
	if pass, ok := os.LookupEnv(_passwordEnv); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: autoMigrate,
		timeout:              _queryTimeout,
		dialect:              "postgresql",
	}, nil
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{url: url}
	})

	return postgreInstance
}

var _ Database = (*PostgreDatabase)(nil)

func (d *PostgreDatabase) Open() error {
	for range _connectRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			if err = conn.Ping(context.Background()); err == nil {
				d.Conn = conn
				return nil
			}
			conn.Close()
		}

		slog.Warn("postgres not ready, retrying", slog.String("error", err.Error()))
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("impossible to connect to database after %d retries", _connectRetries)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

// Up applies pending migrations from migrationsPath.
func (d *PostgreDatabase) Up(migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, migrationURL(d.url))
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("database migrated", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}

func (d *PostgreDatabase) Command(sql string) error {
	_, err := d.Conn.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

func (d *PostgreDatabase) Query(ctx context.Context, sql string, args ...any) ([][]byte, error) {
	queryCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	rows, err := d.Conn.Query(queryCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgre query: %w", err)
	}

	defer rows.Close()
	values := make([][]byte, 0)
	for rows.Next() {
		values = append(values, rows.RawValues()[0])
	}
	return values, rows.Err()
}

func migrationURL(url string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(url, scheme); found {
			return "pgx5://" + rest
		}
	}
	return url
}
