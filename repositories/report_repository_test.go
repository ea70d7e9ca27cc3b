package repositories

import (
	"testing"
	"time"

	"github.com/mahimathinakaran/wastewise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user, err := NewUserRepository(db).Register(name, email, "secret123", models.RoleUser)
	require.NoError(t, err)
	return user
}

func TestReportRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")

	report, err := repo.Create(alice, "Main St, Block 4", "Overflowing bin near the park entrance", "/uploads/img.jpg")
	require.NoError(t, err)

	assert.NotZero(t, report.ID)
	assert.Equal(t, models.StatusPending, report.Status)
	assert.Empty(t, report.AdminComment)
	assert.False(t, report.CreatedAt.IsZero())

	// Owner snapshot.
	assert.Equal(t, alice.ID, report.UserID)
	assert.Equal(t, "Alice", report.UserName)
	assert.Equal(t, "alice@example.com", report.UserEmail)
}

func TestReportRepository_OwnerSnapshotIsStale(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	users := NewUserRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")

	report, err := repo.Create(alice, "Main St, Block 4", "Overflowing bin near the park entrance", "/uploads/img.jpg")
	require.NoError(t, err)

	_, err = users.UpdateProfile(alice.ID, "Alice Cooper", "")
	require.NoError(t, err)

	// Profile edits do not rewrite existing reports.
	reports, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, report.ID, reports[0].ID)
	assert.Equal(t, "Alice", reports[0].UserName)
}

func TestReportRepository_ListOrderingAndIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	first, err := repo.Create(alice, "First Ave", "Litter spread along the sidewalk", "/uploads/1.jpg")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := repo.Create(alice, "Second Ave", "Dumped furniture blocking the lane", "/uploads/2.jpg")
	require.NoError(t, err)

	mine, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID) // most recent first
	assert.Equal(t, first.ID, mine[1].ID)

	theirs, err := repo.ListByUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReportRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")

	report, err := repo.Create(alice, "Main St, Block 4", "Overflowing bin near the park entrance", "/uploads/img.jpg")
	require.NoError(t, err)

	_, err = repo.Update(report.ID, nil, nil)
	assert.ErrorIs(t, err, models.ErrNoFields)

	// Record unchanged after a NoFields failure.
	unchanged, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, unchanged[0].Status)

	_, err = repo.Update(99999, strPtr(models.StatusCompleted), nil)
	assert.ErrorIs(t, err, models.ErrNotFound)

	updated, err := repo.Update(report.ID, strPtr(models.StatusInProgress), strPtr("Crew dispatched"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Crew dispatched", updated.AdminComment)

	// Comment-only update keeps the status.
	updated, err = repo.Update(report.ID, nil, strPtr("Still on site"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Still on site", updated.AdminComment)
}

func TestReportRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	r1, err := repo.Create(alice, "First Ave", "Litter spread along the sidewalk", "/uploads/1.jpg")
	require.NoError(t, err)
	_, err = repo.Create(alice, "Second Ave", "Dumped furniture blocking the lane", "/uploads/2.jpg")
	require.NoError(t, err)
	r3, err := repo.Create(bob, "Third Ave", "Broken glass by the bus stop", "/uploads/3.jpg")
	require.NoError(t, err)

	_, err = repo.Update(r1.ID, strPtr(models.StatusInProgress), nil)
	require.NoError(t, err)
	_, err = repo.Update(r3.ID, strPtr(models.StatusCompleted), nil)
	require.NoError(t, err)

	global, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), global.Pending)
	assert.Equal(t, int64(1), global.InProgress)
	assert.Equal(t, int64(1), global.Completed)
	assert.Equal(t, global.Pending+global.InProgress+global.Completed, global.Total)

	mine, err := repo.StatsByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Pending)
	assert.Equal(t, int64(1), mine.InProgress)
	assert.Equal(t, int64(0), mine.Completed)
	assert.Equal(t, int64(2), mine.Total)
}

func strPtr(s string) *string {
	return &s
}
