package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/logger"
	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/repositories"
	"github.com/mahimathinakaran/wastewise/storage"
	"github.com/mahimathinakaran/wastewise/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxImageSize = 10 << 20 // 10 MiB

type ReportController struct {
	Reports *repositories.ReportRepository
	Store   storage.Store
}

func NewReportController(db *gorm.DB, store storage.Store) *ReportController {
	return &ReportController{
		Reports: repositories.NewReportRepository(db),
		Store:   store,
	}
}

// Create accepts a multipart submission with location, description and an
// image attachment. The image lands in blob storage before the report row is
// written; a blob orphaned by a failed insert is left behind.
func (rc *ReportController) Create(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Location    string `form:"location" binding:"required,min=3,max=200"`
		Description string `form:"description" binding:"required,min=10,max=1000"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file must be an image"})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image size must be less than 10MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		logger.Error("failed to read uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image size must be less than 10MB"})
		return
	}

	key := storage.ImageKey(user.ID, fileHeader.Filename)
	imageURL, err := rc.Store.Save(c.Request.Context(), key, contentType, data)
	if err != nil {
		logger.Error("failed to store image", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	report, err := rc.Reports.Create(user, input.Location, input.Description, imageURL)
	if err != nil {
		logger.Error("failed to persist report", zap.String("image", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	logger.Info("new report created", zap.Uint("report_id", report.ID), zap.String("email", user.Email))

	c.JSON(http.StatusCreated, report)
}

// ListUserReports returns the reports owned by the user in the path, most
// recent first. Non-admins may only list their own.
func (rc *ReportController) ListUserReports(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if user.ID != uint(targetID) && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access these reports"})
		return
	}

	reports, err := rc.Reports.ListByUser(uint(targetID))
	if err != nil {
		logger.Error("failed to list user reports", zap.Uint64("target_id", targetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ListAllReports returns every report, most recent first. Admin only, enforced
// by the route middleware.
func (rc *ReportController) ListAllReports(c *gin.Context) {
	reports, err := rc.Reports.ListAll()
	if err != nil {
		logger.Error("failed to list reports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Update changes a report's status and/or admin comment. Admin only.
func (rc *ReportController) Update(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status       *string `json:"status"`
		AdminComment *string `json:"admin_comment"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An empty status string counts as absent; an empty admin comment is a
	// real value that clears the comment.
	status := input.Status
	if status != nil && *status == "" {
		status = nil
	}
	if status != nil && !models.ValidStatus(*status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be \"pending\", \"in_progress\", or \"completed\""})
		return
	}

	report, err := rc.Reports.Update(uint(reportID), status, input.AdminComment)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		default:
			logger.Error("failed to update report", zap.Uint64("report_id", reportID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		}
		return
	}

	admin := utils.GetUser(c)
	logger.Info("report updated", zap.Uint("report_id", report.ID), zap.String("admin", admin.Email))

	c.JSON(http.StatusOK, report)
}

// Stats returns global per-status counts; callers with the user role also get
// their own breakdown.
func (rc *ReportController) Stats(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	stats, err := rc.Reports.Stats()
	if err != nil {
		logger.Error("failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	response := gin.H{
		"pending":     stats.Pending,
		"in_progress": stats.InProgress,
		"completed":   stats.Completed,
		"total":       stats.Total,
	}

	if user.Role == models.RoleUser {
		mine, err := rc.Reports.StatsByUser(user.ID)
		if err != nil {
			logger.Error("failed to compute user stats", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
			return
		}
		response["my_pending"] = mine.Pending
		response["my_in_progress"] = mine.InProgress
		response["my_completed"] = mine.Completed
		response["my_total"] = mine.Total
	}

	c.JSON(http.StatusOK, response)
}
