package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := builder().
		Select("entry_value").
		From(entsql.Table(kvTableName)).
		Where(entsql.EQ("entry_key", key)).
		Query()

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	query, args := builder().
		Insert(kvTableName).
		Columns("entry_key", "entry_value", "updated_at").
		Values(key, string(value), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("entry_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(kvTableName).
		Where(entsql.EQ("entry_key", key)).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args := builder().
		Select("entry_key").
		From(entsql.Table(kvTableName)).
		Where(entsql.HasPrefix("entry_key", prefix)).
		OrderBy("entry_key").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list keys %q: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		// LIKE folds ASCII case in SQLite.
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, rows.Err()
}
