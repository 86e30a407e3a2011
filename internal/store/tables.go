package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	kvTableName     = "kv_entries"
	eventsTableName = "activity_events"
)

var (
	// kvColumns holds the columns for the "kv_entries" table.
	kvColumns = []*schema.Column{
		{Name: "entry_key", Type: field.TypeString, Size: 512},
		{Name: "entry_value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeInt64, Comment: "Unix milliseconds of the last write"},
	}
	kvTable = &schema.Table{
		Name:       kvTableName,
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	// eventColumns holds the columns for the "activity_events" table.
	eventColumns = []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeInt64, Comment: "Unix nanoseconds, UTC"},
	}
	eventsTable = &schema.Table{
		Name:       eventsTableName,
		Columns:    eventColumns,
		PrimaryKey: []*schema.Column{eventColumns[0]},
		Indexes: []*schema.Index{
			{Name: "activityevent_user_id", Unique: false, Columns: []*schema.Column{eventColumns[2]}},
			{Name: "activityevent_kind", Unique: false, Columns: []*schema.Column{eventColumns[3]}},
		},
	}

	tables = []*schema.Table{kvTable, eventsTable}
)
