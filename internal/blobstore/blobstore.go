package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/constants"
)

// ErrPresignUnsupported 当前存储后端不支持预签名直传
var ErrPresignUnsupported = errors.New("presigned upload not supported by this store")

// Store 对象存储抽象：服务端中转上传 + 预签名直传
type Store interface {
	// Put 写入对象，返回对外可访问的 URL
	Put(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error)
	// PresignPut 生成限时的直传 URL
	PresignPut(ctx context.Context, name string, expires time.Duration) (string, error)
	// PublicURL 对象的对外访问地址
	PublicURL(name string) string
}

// New 按配置构建存储后端
func New(cfg config.BlobConfig) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", constants.BlobProviderLocal:
		return NewLocalStore(cfg.LocalDir), nil
	case constants.BlobProviderS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unsupported blob provider: %s", cfg.Provider)
	}
}
