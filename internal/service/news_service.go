package service

import (
	"strings"

	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/repository"
)

// NewsService 新闻业务服务
type NewsService struct {
	repo repository.NewsRepository
}

// NewNewsService 创建新闻服务
func NewNewsService(repo repository.NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// NewsInput 创建新闻输入
type NewsInput struct {
	Title      string
	Category   string
	Image      string
	Album      []string
	Time       string
	Content    string
	Video      string
	VideoType  string
	VideoEmbed string
	IsVisible  *bool
}

// NewsUpdateInput 更新新闻输入；nil 字段保持原值
type NewsUpdateInput struct {
	Title      *string
	Category   *string
	Image      *string
	Album      *[]string
	Time       *string
	Content    *string
	Video      *string
	VideoType  *string
	VideoEmbed *string
	IsVisible  *bool
}

// NewsDetail 新闻详情（视频链接可识别时附播放器嵌入地址）
type NewsDetail struct {
	models.News
	EmbedURL string `json:"embedUrl,omitempty"`
}

// List 新闻列表，最新在前；includeHidden 为 true 时包含隐藏项
func (s *NewsService) List(includeHidden bool) ([]models.News, error) {
	return s.repo.List(repository.NewsListFilter{IncludeHidden: includeHidden})
}

// GetByID 根据 ID 获取新闻
func (s *NewsService) GetByID(id string) (*models.News, error) {
	news, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}
	return news, nil
}

// Detail 新闻详情
func (s *NewsService) Detail(id string) (*NewsDetail, error) {
	news, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return buildNewsDetail(news), nil
}

// Create 创建新闻，缺省字段按站点默认值补齐
func (s *NewsService) Create(input NewsInput) (*models.News, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	videoType, err := normalizeVideoType(input.VideoType)
	if err != nil {
		return nil, err
	}

	videoEmbed, err := sanitizeOptionalEmbed(input.VideoEmbed)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		Title:      title,
		Category:   defaultIfBlank(input.Category, constants.NewsDefaultCategory),
		Image:      defaultIfBlank(input.Image, constants.NewsFallbackImageURL),
		Album:      models.StringArray(input.Album),
		Time:       defaultIfBlank(input.Time, constants.NewsDefaultTimeLabel),
		Content:    SanitizeRichText(input.Content),
		Video:      strings.TrimSpace(input.Video),
		VideoType:  videoType,
		VideoEmbed: videoEmbed,
		IsVisible:  true,
	}
	if news.Album == nil {
		news.Album = models.StringArray{}
	}
	if input.IsVisible != nil {
		news.IsVisible = *input.IsVisible
	}

	if err := s.repo.Create(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Update 局部更新新闻；未提交的字段保持原值
func (s *NewsService) Update(id string, input NewsUpdateInput) (*models.News, error) {
	news, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		news.Title = title
	}
	if input.Category != nil {
		news.Category = defaultIfBlank(*input.Category, constants.NewsDefaultCategory)
	}
	if input.Image != nil {
		news.Image = defaultIfBlank(*input.Image, constants.NewsFallbackImageURL)
	}
	if input.Album != nil {
		news.Album = models.StringArray(*input.Album)
		if news.Album == nil {
			news.Album = models.StringArray{}
		}
	}
	if input.Time != nil {
		news.Time = defaultIfBlank(*input.Time, constants.NewsDefaultTimeLabel)
	}
	if input.Content != nil {
		news.Content = SanitizeRichText(*input.Content)
	}
	if input.Video != nil {
		news.Video = strings.TrimSpace(*input.Video)
	}
	if input.VideoType != nil {
		videoType, err := normalizeVideoType(*input.VideoType)
		if err != nil {
			return nil, err
		}
		news.VideoType = videoType
	}
	if input.VideoEmbed != nil {
		videoEmbed, err := sanitizeOptionalEmbed(*input.VideoEmbed)
		if err != nil {
			return nil, err
		}
		news.VideoEmbed = videoEmbed
	}
	if input.IsVisible != nil {
		news.IsVisible = *input.IsVisible
	}

	if err := s.repo.Update(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Delete 删除新闻
func (s *NewsService) Delete(id string) error {
	news, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if news == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// IncrementViews 浏览次数加一，返回更新后的新闻
func (s *NewsService) IncrementViews(id string) (*models.News, error) {
	news, err := s.repo.IncrementViews(id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}
	return news, nil
}

func buildNewsDetail(news *models.News) *NewsDetail {
	detail := &NewsDetail{News: *news}
	if news.VideoType == constants.VideoTypeURL {
		if embedURL, ok := DeriveEmbedURL(news.Video); ok {
			detail.EmbedURL = embedURL
		}
	}
	return detail
}

func normalizeVideoType(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", constants.VideoTypeURL:
		return constants.VideoTypeURL, nil
	case constants.VideoTypeEmbed:
		return constants.VideoTypeEmbed, nil
	default:
		return "", ErrInvalidVideoType
	}
}

func sanitizeOptionalEmbed(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	cleaned := SanitizeEmbedCode(raw)
	if cleaned == "" {
		return "", ErrEmbedRejected
	}
	return cleaned, nil
}

func defaultIfBlank(raw, fallback string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fallback
	}
	return value
}
