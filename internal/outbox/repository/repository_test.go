package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/customers/internal/outbox/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var eventColumns = []string{
	"id", "event_type", "payload", "status", "retries", "last_error", "processed_at", "created_at", "updated_at",
}

func newEvent(t *testing.T) *domain.OutboxEvent {
	t.Helper()
	event, err := domain.NewOutboxEvent("customer.created", map[string]any{"customer_id": 1})
	require.NoError(t, err)
	return event
}

func TestPostgreSQLOutboxEventRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLOutboxEventRepository(db)
	event := newEvent(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID.String(), "customer.created", event.Payload, "pending", 0, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOutboxEventRepository_GetPendingEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLOutboxEventRepository(db)
		id := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WithArgs("pending", 10).
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow(id.String(), "customer.deleted", `{"customer_id":3}`, "pending", 1, nil, nil, now, now))

		events, err := repo.GetPendingEvents(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, "customer.deleted", events[0].EventType)
		assert.Equal(t, domain.OutboxEventStatusPending, events[0].Status)
		assert.Equal(t, 1, events[0].Retries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLOutboxEventRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).WillReturnRows(sqlmock.NewRows(eventColumns))

		events, err := repo.GetPendingEvents(context.Background(), 10)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLOutboxEventRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).WillReturnError(assert.AnError)

		events, err := repo.GetPendingEvents(context.Background(), 10)

		assert.Nil(t, events)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPostgreSQLOutboxEventRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLOutboxEventRepository(db)
	event := newEvent(t)
	event.MarkProcessed(time.Now().UTC())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("processed", 0, nil, sqlmock.AnyArg(), event.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOutboxEventRepository_DeleteProcessedOlderThan(t *testing.T) {
	olderThan := time.Now().UTC().Add(-24 * time.Hour)

	t.Run("DryRun", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLOutboxEventRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM outbox_events")).
			WithArgs("processed", olderThan).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

		count, err := repo.DeleteProcessedOlderThan(context.Background(), olderThan, true)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLOutboxEventRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).
			WithArgs("processed", olderThan).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.DeleteProcessedOlderThan(context.Background(), olderThan, false)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLOutboxEventRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLOutboxEventRepository(db)
	event := newEvent(t)
	idBytes, err := event.ID.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(idBytes, "customer.created", event.Payload, "pending", 0, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOutboxEventRepository_GetPendingEvents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLOutboxEventRepository(db)
	id := uuid.Must(uuid.NewV7())
	idBytes, err := id.MarshalBinary()
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ?")).
		WithArgs("pending", 5).
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow(idBytes, "customer.created", `{}`, "pending", 0, nil, nil, now, now))

	events, err := repo.GetPendingEvents(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOutboxEventRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLOutboxEventRepository(db)
	event := newEvent(t)
	idBytes, err := event.ID.MarshalBinary()
	require.NoError(t, err)
	olderThan := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("pending", 0, nil, nil, idBytes).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events WHERE status = ? AND processed_at < ?")).
		WithArgs("processed", olderThan).
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, repo.Update(context.Background(), event))

	count, err := repo.DeleteProcessedOlderThan(context.Background(), olderThan, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
