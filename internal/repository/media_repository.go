package repository

import (
	"errors"

	"github.com/newsroom-next/internal/models"

	"gorm.io/gorm"
)

// MediaRepository 媒体数据访问接口
type MediaRepository interface {
	List(filter MediaListFilter) ([]models.Media, error)
	GetByID(id string) (*models.Media, error)
	Create(media *models.Media) error
	Update(media *models.Media) error
	Delete(id string) error
	IncrementViews(id string) (*models.Media, error)
}

// GormMediaRepository GORM 实现
type GormMediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository 创建媒体仓库
func NewMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// List 媒体列表
func (r *GormMediaRepository) List(filter MediaListFilter) ([]models.Media, error) {
	items := make([]models.Media, 0)
	query := r.db.Model(&models.Media{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SourceType != "" {
		query = query.Where("source_type = ?", filter.SourceType)
	}
	if filter.ExcludeID != "" {
		query = query.Where("id != ?", filter.ExcludeID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	if err := query.Order(orderBy).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取媒体
func (r *GormMediaRepository) GetByID(id string) (*models.Media, error) {
	var media models.Media
	if err := r.db.Where("id = ?", id).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

// Create 创建媒体
func (r *GormMediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

// Update 更新媒体。不回写 views 列，避免覆盖并发的浏览计数
func (r *GormMediaRepository) Update(media *models.Media) error {
	return r.db.Omit("views", "created_at").Save(media).Error
}

// Delete 删除媒体
func (r *GormMediaRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Media{}).Error
}

// IncrementViews 浏览次数加一（单条 SQL，原子更新）
func (r *GormMediaRepository) IncrementViews(id string) (*models.Media, error) {
	result := r.db.Model(&models.Media{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}
