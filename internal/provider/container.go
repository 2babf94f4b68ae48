package provider

import (
	"github.com/newsroom-next/internal/blobstore"
	"github.com/newsroom-next/internal/cache"
	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/logger"
	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/queue"
	"github.com/newsroom-next/internal/repository"
	"github.com/newsroom-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	BlobStore   blobstore.Store

	// Repositories
	AdminRepo    repository.AdminRepository
	NewsRepo     repository.NewsRepository
	TrainingRepo repository.TrainingRepository
	MediaRepo    repository.MediaRepository
	AuditLogRepo repository.AuditLogRepository

	// Services
	AuthService     *service.AuthService
	NewsService     *service.NewsService
	TrainingService *service.TrainingService
	MediaService    *service.MediaService
	UploadService   *service.UploadService
	AuditService    *service.AuditService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	// 初始化对象存储
	store, err := blobstore.New(cfg.Blob)
	if err != nil {
		logger.Errorw("provider_init_blobstore_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		BlobStore:   store,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.NewsRepo = repository.NewNewsRepository(db)
	c.TrainingRepo = repository.NewTrainingRepository(db)
	c.MediaRepo = repository.NewMediaRepository(db)
	c.AuditLogRepo = repository.NewAuditLogRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.NewsService = service.NewNewsService(c.NewsRepo)
	c.TrainingService = service.NewTrainingService(c.TrainingRepo)
	c.MediaService = service.NewMediaService(c.MediaRepo, c.NewsRepo)
	c.UploadService = service.NewUploadService(c.Config, c.BlobStore)
	c.AuditService = service.NewAuditService(c.AuditLogRepo)
}
