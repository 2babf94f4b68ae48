package service

import (
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/repository"
)

const defaultAuditListLimit = 100

// AuditService 审计日志查询服务；写入侧由队列 worker 负责
type AuditService struct {
	repo repository.AuditLogRepository
}

// NewAuditService 创建审计服务
func NewAuditService(repo repository.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

// List 最近的审计记录
func (s *AuditService) List(kind string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > defaultAuditListLimit {
		limit = defaultAuditListLimit
	}
	return s.repo.List(repository.AuditLogListFilter{
		Kind:  kind,
		Limit: limit,
	})
}
