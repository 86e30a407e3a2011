package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// maxEventsPerUser caps each user's activity list in redis.
const maxEventsPerUser = 1000

// Redis is a KV backend on a redis server. Every key is namespaced by prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

var _ Backend = (*Redis)(nil)

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// OpenRedis connects to the server at url (redis://host:port/db) and
// verifies it is reachable.
func OpenRedis(ctx context.Context, url, prefix string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedis(client, prefix), nil
}

func (r *Redis) key(k string) string { return r.prefix + "kv:" + k }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return val, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	full := r.key("")
	match := escapeGlob(full+prefix) + "*"

	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", prefix, err)
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, full))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *Redis) eventsKey(userID string) string { return r.prefix + "events:" + esc(userID) }

// seqKey sits outside the events: namespace.
func (r *Redis) seqKey() string { return r.prefix + "seq:events" }

func (r *Redis) AppendEvent(ctx context.Context, ev Event) error {
	ev = prepareEvent(ev)
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ev.Sequence = seq

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := r.eventsKey(ev.UserID)
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, key, b)
		p.LTrim(ctx, key, 0, maxEventsPerUser-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s event: %w", ev.Kind, err)
	}
	return nil
}

func (r *Redis) RecentEvents(ctx context.Context, userID string, limit int) ([]Event, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raw, err := r.client.LRange(ctx, r.eventsKey(userID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events := make([]Event, 0, len(raw))
	for _, s := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(s), &ev); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// escapeGlob escapes redis MATCH metacharacters so user IDs are literal.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
