package service

import (
	"strings"
	"time"

	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/repository"
)

// TrainingService 培训业务服务
type TrainingService struct {
	repo repository.TrainingRepository
}

// NewTrainingService 创建培训服务
func NewTrainingService(repo repository.TrainingRepository) *TrainingService {
	return &TrainingService{repo: repo}
}

// TrainingInput 创建培训输入
type TrainingInput struct {
	Title        string
	Date         int
	Month        int
	Year         int
	Time         string
	Location     string
	Seats        int
	Available    *int
	Price        string
	Type         string
	Speaker      string
	SpeakerImage string
	Description  string
}

// TrainingUpdateInput 更新培训输入；nil 字段保持原值
type TrainingUpdateInput struct {
	Title        *string
	Date         *int
	Month        *int
	Year         *int
	Time         *string
	Location     *string
	Seats        *int
	Available    *int
	Price        *string
	Type         *string
	Speaker      *string
	SpeakerImage *string
	Description  *string
}

// List 培训列表，最新在前
func (s *TrainingService) List() ([]models.Training, error) {
	return s.repo.List(repository.TrainingListFilter{})
}

// GetByID 根据 ID 获取培训
func (s *TrainingService) GetByID(id string) (*models.Training, error) {
	training, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, ErrNotFound
	}
	return training, nil
}

// Create 创建培训，缺省字段按默认值补齐
func (s *TrainingService) Create(input TrainingInput) (*models.Training, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	date := input.Date
	if date == 0 {
		date = 1
	}
	year := input.Year
	if year == 0 {
		year = time.Now().Year()
	}
	if err := validateCalendarDay(date, input.Month, year); err != nil {
		return nil, err
	}

	seats := input.Seats
	if seats < 0 {
		return nil, ErrInvalidSeats
	}
	available := seats
	if input.Available != nil {
		available = *input.Available
	}
	if available < 0 || available > seats {
		return nil, ErrInvalidAvailable
	}

	training := &models.Training{
		Title:        title,
		Date:         date,
		Month:        input.Month,
		Year:         year,
		Time:         strings.TrimSpace(input.Time),
		Location:     strings.TrimSpace(input.Location),
		Seats:        seats,
		Available:    available,
		Price:        strings.TrimSpace(input.Price),
		Type:         defaultIfBlank(input.Type, constants.TrainingTypeDefault),
		Speaker:      strings.TrimSpace(input.Speaker),
		SpeakerImage: strings.TrimSpace(input.SpeakerImage),
		Description:  SanitizeRichText(input.Description),
	}

	if err := s.repo.Create(training); err != nil {
		return nil, err
	}
	return training, nil
}

// Update 局部更新培训；未提交的字段保持原值
func (s *TrainingService) Update(id string, input TrainingUpdateInput) (*models.Training, error) {
	training, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		training.Title = title
	}

	date := training.Date
	month := training.Month
	year := training.Year
	if input.Date != nil {
		date = *input.Date
	}
	if input.Month != nil {
		month = *input.Month
	}
	if input.Year != nil {
		year = *input.Year
	}
	if input.Date != nil || input.Month != nil || input.Year != nil {
		if err := validateCalendarDay(date, month, year); err != nil {
			return nil, err
		}
	}
	training.Date = date
	training.Month = month
	training.Year = year

	seats := training.Seats
	available := training.Available
	if input.Seats != nil {
		seats = *input.Seats
	}
	if input.Available != nil {
		available = *input.Available
	}
	if input.Seats != nil || input.Available != nil {
		if seats < 0 {
			return nil, ErrInvalidSeats
		}
		// 缩减总席位时剩余席位同步压缩到上限
		if input.Seats != nil && input.Available == nil && available > seats {
			available = seats
		}
		if available < 0 || available > seats {
			return nil, ErrInvalidAvailable
		}
	}
	training.Seats = seats
	training.Available = available

	if input.Time != nil {
		training.Time = strings.TrimSpace(*input.Time)
	}
	if input.Location != nil {
		training.Location = strings.TrimSpace(*input.Location)
	}
	if input.Price != nil {
		training.Price = strings.TrimSpace(*input.Price)
	}
	if input.Type != nil {
		training.Type = defaultIfBlank(*input.Type, constants.TrainingTypeDefault)
	}
	if input.Speaker != nil {
		training.Speaker = strings.TrimSpace(*input.Speaker)
	}
	if input.SpeakerImage != nil {
		training.SpeakerImage = strings.TrimSpace(*input.SpeakerImage)
	}
	if input.Description != nil {
		training.Description = SanitizeRichText(*input.Description)
	}

	if err := s.repo.Update(training); err != nil {
		return nil, err
	}
	return training, nil
}

// Delete 删除培训
func (s *TrainingService) Delete(id string) error {
	training, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if training == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// validateCalendarDay 校验 日/月/年 组合是公历中真实存在的一天（month 从 0 起）
func validateCalendarDay(date, month, year int) error {
	if month < 0 || month > 11 {
		return ErrInvalidMonth
	}
	if date < 1 || date > daysInMonth(month, year) {
		return ErrInvalidDay
	}
	return nil
}

// daysInMonth 指定月份的天数（month 从 0 起），闰年由 time 包处理
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
