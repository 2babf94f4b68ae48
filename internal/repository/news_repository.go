package repository

import (
	"errors"
	"strings"

	"github.com/newsroom-next/internal/models"

	"gorm.io/gorm"
)

// NewsRepository 新闻数据访问接口
type NewsRepository interface {
	List(filter NewsListFilter) ([]models.News, error)
	GetByID(id string) (*models.News, error)
	Create(news *models.News) error
	Update(news *models.News) error
	Delete(id string) error
	IncrementViews(id string) (*models.News, error)
}

// GormNewsRepository GORM 实现
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository 创建新闻仓库
func NewNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

// List 新闻列表，默认只含可见项
func (r *GormNewsRepository) List(filter NewsListFilter) ([]models.News, error) {
	items := make([]models.News, 0)
	query := r.db.Model(&models.News{})

	if !filter.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
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

// GetByID 根据 ID 获取新闻
func (r *GormNewsRepository) GetByID(id string) (*models.News, error) {
	var news models.News
	if err := r.db.Where("id = ?", id).First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

// Create 创建新闻
func (r *GormNewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// Update 更新新闻。不回写 views 列，避免覆盖并发的浏览计数
func (r *GormNewsRepository) Update(news *models.News) error {
	return r.db.Omit("views", "created_at").Save(news).Error
}

// Delete 删除新闻
func (r *GormNewsRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.News{}).Error
}

// IncrementViews 浏览次数加一（单条 SQL，原子更新，不经过读-改-写）
func (r *GormNewsRepository) IncrementViews(id string) (*models.News, error) {
	result := r.db.Model(&models.News{}).
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
