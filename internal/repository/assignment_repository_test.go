package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func setupMockAssignmentDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *AssignmentRepo) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewAssignmentRepo(db)
}

func TestUpdateDates_MovesBounds(t *testing.T) {
	db, mock, repo := setupMockAssignmentDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("bed-1", "a-1", "2025-05-10", "2025-05-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE room_assignments`).
		WithArgs("2025-05-03", "2025-05-10", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateDates(context.Background(), "a-1", "bed-1", "2025-05-03", "2025-05-10", false)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDates_DeletedAssignmentNotFound(t *testing.T) {
	// A resize racing a delete must report not found, never silently
	// succeed with nothing persisted.
	db, mock, repo := setupMockAssignmentDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("bed-1", "a-gone", "2025-05-10", "2025-05-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE room_assignments`).
		WithArgs("2025-05-03", "2025-05-10", "a-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id FROM room_assignments`).
		WithArgs("a-gone").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.UpdateDates(context.Background(), "a-gone", "bed-1", "2025-05-03", "2025-05-10", false)
	require.ErrorIs(t, err, ErrAssignmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDates_NoOpUpdateStillSucceeds(t *testing.T) {
	// MySQL reports zero affected rows when the new dates equal the
	// stored ones; the row exists, so that is a success.
	db, mock, repo := setupMockAssignmentDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("bed-1", "a-1", "2025-05-10", "2025-05-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE room_assignments`).
		WithArgs("2025-05-03", "2025-05-10", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id FROM room_assignments`).
		WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))
	mock.ExpectCommit()

	err := repo.UpdateDates(context.Background(), "a-1", "bed-1", "2025-05-03", "2025-05-10", false)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDates_OverlapRejected(t *testing.T) {
	db, mock, repo := setupMockAssignmentDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("bed-1", "a-1", "2025-05-10", "2025-05-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.UpdateDates(context.Background(), "a-1", "bed-1", "2025-05-03", "2025-05-10", false)
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
