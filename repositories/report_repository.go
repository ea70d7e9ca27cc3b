package repositories

import (
	"errors"

	"github.com/mahimathinakaran/wastewise/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Create persists a new report owned by the given user. The owner's name and
// email are snapshotted onto the record; later profile edits do not rewrite
// existing reports.
func (r *ReportRepository) Create(owner *models.User, location, description, imageURL string) (*models.Report, error) {
	report := models.Report{
		UserID:       owner.ID,
		UserName:     owner.Name,
		UserEmail:    owner.Email,
		ImageURL:     imageURL,
		Location:     location,
		Description:  description,
		Status:       models.StatusPending,
		AdminComment: "",
	}

	if err := r.DB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListByUser(userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) ListAll() ([]models.Report, error) {
	var reports []models.Report
	err := r.DB.Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Update merges a new status and/or admin comment into the report. Nil means
// "leave unchanged"; an empty admin comment is a valid value (it clears the
// comment), which is why the field is a pointer.
func (r *ReportRepository) Update(id uint, status, adminComment *string) (*models.Report, error) {
	updates := map[string]interface{}{}
	if status != nil {
		updates["status"] = *status
	}
	if adminComment != nil {
		updates["admin_comment"] = *adminComment
	}
	if len(updates) == 0 {
		return nil, models.ErrNoFields
	}

	var report models.Report
	if err := r.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if err := r.DB.Model(&report).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Stats counts reports per status across all users.
func (r *ReportRepository) Stats() (models.ReportStats, error) {
	return r.countByStatus(r.DB.Model(&models.Report{}))
}

// StatsByUser counts reports per status for a single owner.
func (r *ReportRepository) StatsByUser(userID uint) (models.ReportStats, error) {
	return r.countByStatus(r.DB.Model(&models.Report{}).Where("user_id = ?", userID))
}

func (r *ReportRepository) countByStatus(query *gorm.DB) (models.ReportStats, error) {
	var stats models.ReportStats

	counts := []struct {
		status string
		dest   *int64
	}{
		{models.StatusPending, &stats.Pending},
		{models.StatusInProgress, &stats.InProgress},
		{models.StatusCompleted, &stats.Completed},
	}

	for _, c := range counts {
		if err := query.Session(&gorm.Session{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return models.ReportStats{}, err
		}
	}

	stats.Total = stats.Pending + stats.InProgress + stats.Completed
	return stats, nil
}
