package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Activity events live in one append-only table. The autoincrement
// sequence gives a total order across event kinds (did the hint come
// before or after the answer?).

func (s *Store) AppendEvent(ctx context.Context, ev Event) error {
	ev = prepareEvent(ev)
	detail, err := json.Marshal(ev.Detail)
	if err != nil {
		return fmt.Errorf("marshal event detail: %w", err)
	}

	query, args := builder().
		Insert(eventsTableName).
		Columns("event_id", "user_id", "kind", "subject", "detail", "timestamp").
		Values(ev.ID, ev.UserID, ev.Kind, ev.Subject, string(detail), ev.Timestamp.UnixNano()).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s event: %w", ev.Kind, err)
	}
	return nil
}

func (s *Store) RecentEvents(ctx context.Context, userID string, limit int) ([]Event, error) {
	sel := builder().
		Select("sequence", "event_id", "user_id", "kind", "subject", "detail", "timestamp").
		From(entsql.Table(eventsTableName)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev     Event
			detail string
			ts     int64
		)
		if err := rows.Scan(&ev.Sequence, &ev.ID, &ev.UserID, &ev.Kind, &ev.Subject, &detail, &ts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if detail != "" && detail != "null" {
			if err := json.Unmarshal([]byte(detail), &ev.Detail); err != nil {
				return nil, fmt.Errorf("decode event %d detail: %w", ev.Sequence, err)
			}
		}
		ev.Timestamp = time.Unix(0, ts).UTC()
		events = append(events, ev)
	}
	return events, rows.Err()
}

// prepareEvent fills in the ID and timestamp when the caller left them empty.
func prepareEvent(ev Event) Event {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	return ev
}
