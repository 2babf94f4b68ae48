package service

import (
	"strings"

	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/repository"
)

// MediaService 媒体业务服务
type MediaService struct {
	repo     repository.MediaRepository
	newsRepo repository.NewsRepository
}

// NewMediaService 创建媒体服务；newsRepo 用于相关媒体的跨集合回退
func NewMediaService(repo repository.MediaRepository, newsRepo repository.NewsRepository) *MediaService {
	return &MediaService{repo: repo, newsRepo: newsRepo}
}

// MediaInput 创建媒体输入
type MediaInput struct {
	Title       string
	Category    string
	SourceType  string
	URL         string
	EmbedCode   string
	Description string
}

// MediaUpdateInput 更新媒体输入；nil 字段保持原值
type MediaUpdateInput struct {
	Title       *string
	Category    *string
	SourceType  *string
	URL         *string
	EmbedCode   *string
	Description *string
}

// MediaDetail 媒体详情（外链视频可识别时附播放器嵌入地址）
type MediaDetail struct {
	models.Media
	EmbedURL string `json:"embedUrl,omitempty"`
}

// List 媒体列表，最新在前
func (s *MediaService) List() ([]models.Media, error) {
	return s.repo.List(repository.MediaListFilter{})
}

// GetByID 根据 ID 获取媒体
func (s *MediaService) GetByID(id string) (*models.Media, error) {
	media, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrNotFound
	}
	return media, nil
}

// Detail 媒体详情
func (s *MediaService) Detail(id string) (*MediaDetail, error) {
	media, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return buildMediaDetail(media), nil
}

// Related 指定媒体的相关条目；库内不足时回退到最新可见新闻并映射成媒体形态
func (s *MediaService) Related(id string) ([]models.Media, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	related, err := s.repo.List(repository.MediaListFilter{
		ExcludeID: id,
		Limit:     constants.RelatedMediaLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(related) > 0 {
		return related, nil
	}

	news, err := s.newsRepo.List(repository.NewsListFilter{Limit: constants.RelatedMediaLimit})
	if err != nil {
		return nil, err
	}
	mapped := make([]models.Media, 0, len(news))
	for _, n := range news {
		mapped = append(mapped, models.Media{
			ID:          "related-" + n.ID,
			Title:       n.Title,
			Category:    constants.MediaCategoryImage,
			SourceType:  constants.MediaSourceLink,
			URL:         n.Image,
			Description: n.Content,
			CreatedAt:   n.CreatedAt,
		})
	}
	return mapped, nil
}

// Create 创建媒体
func (s *MediaService) Create(input MediaInput) (*models.Media, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	category, err := normalizeMediaCategory(input.Category)
	if err != nil {
		return nil, err
	}
	sourceType, err := normalizeMediaSourceType(input.SourceType)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		Title:       title,
		Category:    category,
		SourceType:  sourceType,
		URL:         strings.TrimSpace(input.URL),
		Description: SanitizeRichText(input.Description),
	}

	switch sourceType {
	case constants.MediaSourceEmbed:
		cleaned := SanitizeEmbedCode(input.EmbedCode)
		if strings.TrimSpace(input.EmbedCode) == "" {
			return nil, ErrEmbedRequired
		}
		if cleaned == "" {
			return nil, ErrEmbedRejected
		}
		media.EmbedCode = cleaned
	default:
		if media.URL == "" {
			return nil, ErrURLRequired
		}
	}

	if err := s.repo.Create(media); err != nil {
		return nil, err
	}
	return media, nil
}

// Update 局部更新媒体；未提交的字段保持原值
func (s *MediaService) Update(id string, input MediaUpdateInput) (*models.Media, error) {
	media, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		media.Title = title
	}
	if input.Category != nil {
		category, err := normalizeMediaCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		media.Category = category
	}
	if input.SourceType != nil {
		sourceType, err := normalizeMediaSourceType(*input.SourceType)
		if err != nil {
			return nil, err
		}
		media.SourceType = sourceType
	}
	if input.URL != nil {
		media.URL = strings.TrimSpace(*input.URL)
	}
	if input.EmbedCode != nil {
		if strings.TrimSpace(*input.EmbedCode) == "" {
			media.EmbedCode = ""
		} else {
			cleaned := SanitizeEmbedCode(*input.EmbedCode)
			if cleaned == "" {
				return nil, ErrEmbedRejected
			}
			media.EmbedCode = cleaned
		}
	}
	if input.Description != nil {
		media.Description = SanitizeRichText(*input.Description)
	}

	// 来源约束在合并后的完整状态上复查
	switch media.SourceType {
	case constants.MediaSourceEmbed:
		if media.EmbedCode == "" {
			return nil, ErrEmbedRequired
		}
	default:
		if media.URL == "" {
			return nil, ErrURLRequired
		}
	}

	if err := s.repo.Update(media); err != nil {
		return nil, err
	}
	return media, nil
}

// Delete 删除媒体
func (s *MediaService) Delete(id string) error {
	media, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// IncrementViews 浏览次数加一，返回更新后的媒体
func (s *MediaService) IncrementViews(id string) (*models.Media, error) {
	media, err := s.repo.IncrementViews(id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrNotFound
	}
	return media, nil
}

func buildMediaDetail(media *models.Media) *MediaDetail {
	detail := &MediaDetail{Media: *media}
	if media.SourceType == constants.MediaSourceLink {
		if embedURL, ok := DeriveEmbedURL(media.URL); ok {
			detail.EmbedURL = embedURL
		}
	}
	return detail
}

func normalizeMediaCategory(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", constants.MediaCategoryImage:
		return constants.MediaCategoryImage, nil
	case constants.MediaCategoryVideo:
		return constants.MediaCategoryVideo, nil
	default:
		return "", ErrInvalidMediaKind
	}
}

func normalizeMediaSourceType(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", constants.MediaSourceUpload:
		return constants.MediaSourceUpload, nil
	case constants.MediaSourceLink:
		return constants.MediaSourceLink, nil
	case constants.MediaSourceEmbed:
		return constants.MediaSourceEmbed, nil
	default:
		return "", ErrInvalidSourceType
	}
}
