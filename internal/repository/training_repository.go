package repository

import (
	"errors"
	"strings"

	"github.com/newsroom-next/internal/models"

	"gorm.io/gorm"
)

// TrainingRepository 培训数据访问接口
type TrainingRepository interface {
	List(filter TrainingListFilter) ([]models.Training, error)
	GetByID(id string) (*models.Training, error)
	Create(training *models.Training) error
	Update(training *models.Training) error
	Delete(id string) error
}

// GormTrainingRepository GORM 实现
type GormTrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository 创建培训仓库
func NewTrainingRepository(db *gorm.DB) *GormTrainingRepository {
	return &GormTrainingRepository{db: db}
}

// List 培训列表
func (r *GormTrainingRepository) List(filter TrainingListFilter) ([]models.Training, error) {
	items := make([]models.Training, 0)
	query := r.db.Model(&models.Training{})

	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR speaker LIKE ? OR location LIKE ?", like, like, like)
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

// GetByID 根据 ID 获取培训
func (r *GormTrainingRepository) GetByID(id string) (*models.Training, error) {
	var training models.Training
	if err := r.db.Where("id = ?", id).First(&training).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

// Create 创建培训
func (r *GormTrainingRepository) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

// Update 更新培训
func (r *GormTrainingRepository) Update(training *models.Training) error {
	return r.db.Save(training).Error
}

// Delete 删除培训
func (r *GormTrainingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Training{}).Error
}
