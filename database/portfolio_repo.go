package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/folioforge/portfolio-backend/errs"
	"github.com/folioforge/portfolio-backend/models"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db}
}

// FindByUserID returns the user's portfolio, or (nil, nil) when none has been
// created yet. A missing record is a normal state for a new user, not an error.
func (r *PortfolioRepo) FindByUserID(userID uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.Where("user_id = ?", userID).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "portfolio", err)
	}
	return &portfolio, nil
}

// upsertColumns is the assignment list for the on-conflict update. Every
// entry must be a real column on the portfolios table; the schema test keeps
// it honest.
var upsertColumns = []string{
	"personal_info", "summary", "experience", "education", "projects",
	"skills", "services", "certifications", "languages", "research",
	"achievements", "selected_template", "is_published", "published_url",
	"updated_at",
}

// Upsert writes the whole portfolio record for a user. Saves are whole-record
// by design: the last write for a user wins, column by column.
func (r *PortfolioRepo) Upsert(portfolio *models.Portfolio) error {
	if portfolio.ID == uuid.Nil {
		portfolio.ID = uuid.New()
	}
	portfolio.UpdatedAt = time.Now()
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(portfolio).Error
	if err != nil {
		return errs.NewDatabaseError("save", "portfolio", err)
	}
	return nil
}

// SaveRaw replaces the user's document with the given wizard document,
// creating the record on first save. Both the full-save endpoint and the
// auto-save scheduler funnel through here.
func (r *PortfolioRepo) SaveRaw(userID uuid.UUID, raw *models.RawPortfolio) error {
	portfolio, err := r.FindByUserID(userID)
	if err != nil {
		return err
	}
	if portfolio == nil {
		portfolio = &models.Portfolio{
			UserID:           userID,
			SelectedTemplate: models.TemplateBusiness,
		}
	}
	if err := portfolio.ApplyRaw(raw); err != nil {
		return errs.NewInternalErrorWithCause("packing portfolio", err)
	}
	return r.Upsert(portfolio)
}

// Publish marks the portfolio live at the given URL.
func (r *PortfolioRepo) Publish(id uuid.UUID, url string) error {
	return r.setPublished(id, true, &url)
}

// Unpublish takes the portfolio offline. The stored URL is cleared so a later
// publish mints a fresh one.
func (r *PortfolioRepo) Unpublish(id uuid.UUID) error {
	return r.setPublished(id, false, nil)
}

func (r *PortfolioRepo) setPublished(id uuid.UUID, published bool, url *string) error {
	result := r.db.Model(&models.Portfolio{}).Where("id = ?", id).Updates(map[string]any{
		"is_published":  published,
		"published_url": url,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return errs.NewDatabaseError("update", "portfolio", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("portfolio")
	}
	return nil
}
