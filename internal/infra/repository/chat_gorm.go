package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/chat"
	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

// ChatGormRepository backs the chat engine with catalog and ledger
// lookups.
type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

func (r *ChatGormRepository) Venue(ctx context.Context) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *ChatGormRepository) ListSports(ctx context.Context) ([]models.Sport, error) {
	var sports []models.Sport
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&sports).Error; err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *ChatGormRepository) ListFields(ctx context.Context) ([]models.Field, error) {
	var fields []models.Field
	if err := r.db.WithContext(ctx).
		Preload("Sport").
		Order("id ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *ChatGormRepository) RevenueSummary(ctx context.Context) (*chat.RevenueSummary, error) {
	now := timezone.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sum := &chat.RevenueSummary{}

	row := r.db.WithContext(ctx).
		Model(&models.Pemasukan{}).
		Select("COALESCE(SUM(amount), 0), COUNT(*)").
		Where("created_at >= ?", dayStart).
		Row()
	if err := row.Scan(&sum.RevenueToday, &sum.CountToday); err != nil {
		return nil, err
	}

	row = r.db.WithContext(ctx).
		Model(&models.Pemasukan{}).
		Select("COALESCE(SUM(amount), 0), COUNT(*)").
		Where("created_at >= ?", monthStart).
		Row()
	if err := row.Scan(&sum.RevenueMonth, &sum.CountMonth); err != nil {
		return nil, err
	}

	return sum, nil
}

func (r *ChatGormRepository) ActivePrompt(ctx context.Context) (*models.SystemPrompt, error) {
	var prompt models.SystemPrompt
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// Compile-time check
var _ chat.DataProvider = (*ChatGormRepository)(nil)
