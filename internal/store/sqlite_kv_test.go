package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newStore(db)
	ctx := context.Background()
	diskErr := errors.New("disk I/O error")

	t.Run("Get", func(t *testing.T) {
		mock.ExpectQuery("SELECT `entry_value` FROM `kv_entries`").
			WithArgs("ledger/ada").
			WillReturnError(diskErr)

		_, found, err := s.Get(ctx, "ledger/ada")
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, diskErr)
		assert.Contains(t, err.Error(), `get "ledger/ada"`)
	})

	t.Run("Put", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO `kv_entries`").
			WillReturnError(diskErr)

		err := s.Put(ctx, "ledger/ada", []byte("{}"))
		require.Error(t, err)
		assert.ErrorIs(t, err, diskErr)
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM `kv_entries`").
			WithArgs("ledger/ada").
			WillReturnError(diskErr)

		err := s.Delete(ctx, "ledger/ada")
		require.Error(t, err)
		assert.ErrorIs(t, err, diskErr)
	})

	t.Run("AppendEvent", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO `activity_events`").
			WillReturnError(diskErr)

		err := s.AppendEvent(ctx, Event{UserID: "ada", Kind: EventAnswer})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save answer event")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_KeysFiltersCaseFoldedMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newStore(db)

	rows := sqlmock.NewRows([]string{"entry_key"}).
		AddRow("attempt/ADA/q1").
		AddRow("attempt/ada/q1")
	mock.ExpectQuery("SELECT `entry_key` FROM `kv_entries`").
		WillReturnRows(rows)

	keys, err := s.Keys(context.Background(), "attempt/ada/")
	require.NoError(t, err)
	assert.Equal(t, []string{"attempt/ada/q1"}, keys)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetMissingIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newStore(db)
	mock.ExpectQuery("SELECT `entry_value` FROM `kv_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

	v, found, err := s.Get(context.Background(), "streak/ada")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}
