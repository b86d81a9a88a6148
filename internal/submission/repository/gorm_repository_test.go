package repository

import (
	"testing"

	"besteller-backend/internal/submission/domain"
	"besteller-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Submission{}))
	return db
}

func TestCreateAndFind(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	submission := &domain.Submission{
		ChecklistID:   "checklist-1",
		Name:          "Jane Doe",
		MitarbeiterID: "EMP-1",
		Email:         "jane@example.com",
		Data: domain.AnswerMap{
			"g1": {"i1": "yes"},
		},
	}
	require.NoError(t, repo.Create(submission))
	assert.NotEmpty(t, submission.ID)
	assert.False(t, submission.CreatedAt.IsZero())

	found, err := repo.FindByChecklistAndMitarbeiter("checklist-1", "EMP-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.Name)
	assert.Equal(t, "yes", found.Data["g1"]["i1"])
}

func TestFindMissingReturnsNil(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	found, err := repo.FindByChecklistAndMitarbeiter("checklist-1", "EMP-404")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDuplicateInsertIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)

	first := &domain.Submission{ChecklistID: "checklist-1", Name: "Jane", MitarbeiterID: "EMP-1"}
	require.NoError(t, repo.Create(first))

	second := &domain.Submission{ChecklistID: "checklist-1", Name: "Jane", MitarbeiterID: "EMP-1"}
	err := repo.Create(second)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&domain.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSameMitarbeiterDifferentChecklistAllowed(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	require.NoError(t, repo.Create(&domain.Submission{ChecklistID: "c1", Name: "Jane", MitarbeiterID: "EMP-1"}))
	require.NoError(t, repo.Create(&domain.Submission{ChecklistID: "c2", Name: "Jane", MitarbeiterID: "EMP-1"}))
}

func TestFindByChecklistID(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	require.NoError(t, repo.Create(&domain.Submission{ChecklistID: "c1", Name: "A", MitarbeiterID: "EMP-1"}))
	require.NoError(t, repo.Create(&domain.Submission{ChecklistID: "c1", Name: "B", MitarbeiterID: "EMP-2"}))
	require.NoError(t, repo.Create(&domain.Submission{ChecklistID: "c2", Name: "C", MitarbeiterID: "EMP-1"}))

	submissions, err := repo.FindByChecklistID("c1")
	require.NoError(t, err)
	assert.Len(t, submissions, 2)
}
