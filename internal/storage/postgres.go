package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStorage хранит каждую коллекцию одной jsonb-строкой
// в таблице collections.
type PostgresStorage struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// ConnectPostgres создаёт пул, применяет миграции и возвращает драйвер.
func ConnectPostgres(ctx context.Context, dsn string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пула соединений к БД: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("не удалось пинговать БД: %w", err)
	}

	if err := applyMigrations(dsn); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStorage{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func applyMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("не удалось открыть соединение для миграций: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("не удалось применить миграции: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Close() {
	s.pool.Close()
}

func (s *PostgresStorage) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query, args, err := s.sb.
		Select("data").
		From("collections").
		Where(sq.Eq{"name": collection}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("не удалось прочитать коллекцию %q: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("повреждённая коллекция %q: %w", collection, err)
	}
	return records, nil
}

func (s *PostgresStorage) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	query, args, err := s.sb.
		Insert("collections").
		Columns("name", "data").
		Values(collection, data).
		Suffix("ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("не удалось сохранить коллекцию %q: %w", collection, err)
	}
	return nil
}
