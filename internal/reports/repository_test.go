package reports

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestRepository_GetParticipantsWithEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	// A participant without an event still shows up, with an empty name
	mock.ExpectQuery(`COALESCE\(e\.name, ''\) AS event_name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "enterprise", "email", "skills", "event_name"}).
			AddRow(1, "Ana", "ACME", "ana@acme.com", "go", "Tech Congress").
			AddRow(2, "Bruno", "Initech", "bruno@initech.com", "js", ""))

	rows, err := repo.GetParticipantsWithEvent()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Tech Congress", rows[0].EventName)
	require.Equal(t, "", rows[1].EventName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetEventsWithParticipantCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	d1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`COUNT\(p\.id\) AS participants_count`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "location", "description", "participants_count"}).
			AddRow(1, "Empty Event", d1, "SP", "", 0).
			AddRow(2, "Tech Congress", d2, "RJ", "annual meetup", 12))

	rows, err := repo.GetEventsWithParticipantCount()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 0, rows[0].ParticipantsCount)
	require.Equal(t, 12, rows[1].ParticipantsCount)
	require.NoError(t, mock.ExpectationsWereMet())
}
