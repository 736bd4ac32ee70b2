package services

import (
	"testing"

	"github.com/dizzyfrogs/chunklog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoalService(db)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WithArgs(uint(7), 1).
		WillReturnError(errRecordNotFound())

	_, err := svc.Get(7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalUpsert_InsertsWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoalService(db)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnError(errRecordNotFound())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "goals"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	goal, err := svc.Upsert(7, GoalInput{
		GoalType:       models.GoalMaintenance,
		TargetCalories: floatPtr(2500),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), goal.UserID)
	assert.Equal(t, models.GoalMaintenance, goal.GoalType)
	assert.Equal(t, 2500.0, *goal.TargetCalories)
	assert.Nil(t, goal.TargetProtein)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A second write never inserts a second row, and targets the caller
// leaves unset survive the overwrite.
func TestGoalUpsert_OverwritesInPlace(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoalService(db)

	rows := sqlmock.NewRows([]string{"user_id", "goal_type", "target_weight", "target_calories", "target_protein", "target_carbs", "target_fat"}).
		AddRow(7, models.GoalMaintenance, nil, 2500.0, 140.0, nil, nil)
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnRows(rows)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "goals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	goal, err := svc.Upsert(7, GoalInput{
		GoalType:       models.GoalWeightLoss,
		TargetCalories: floatPtr(2000),
	})
	require.NoError(t, err)

	assert.Equal(t, models.GoalWeightLoss, goal.GoalType)
	assert.Equal(t, 2000.0, *goal.TargetCalories)
	// Preserved from the stored row
	assert.Equal(t, 140.0, *goal.TargetProtein)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculate_NoGoalIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoalService(db)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnError(errRecordNotFound())

	user := &models.User{}
	user.ID = 7

	require.NoError(t, svc.Recalculate(user, 80))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculate_IncompleteProfileSurfaces(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoalService(db)

	rows := sqlmock.NewRows([]string{"user_id", "goal_type"}).
		AddRow(7, models.GoalMaintenance)
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnRows(rows)

	user := &models.User{}
	user.ID = 7

	err := svc.Recalculate(user, 80)
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}
