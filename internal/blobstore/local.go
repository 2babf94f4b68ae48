package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStore 本地磁盘存储，文件经 /uploads 静态路由对外提供
type LocalStore struct {
	dir string
}

// NewLocalStore 创建本地存储
func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "./uploads"
	}
	return &LocalStore{dir: dir}
}

// Dir 存储根目录
func (s *LocalStore) Dir() string {
	return s.dir
}

// Put 写入对象
func (s *LocalStore) Put(_ context.Context, name string, reader io.Reader, _ int64, _ string) (string, error) {
	savePath := filepath.Join(s.dir, filepath.Clean("/"+name))
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return "", err
	}
	return s.PublicURL(name), nil
}

// PresignPut 本地存储不支持直传
func (s *LocalStore) PresignPut(context.Context, string, time.Duration) (string, error) {
	return "", ErrPresignUnsupported
}

// PublicURL 对象的公开访问地址
func (s *LocalStore) PublicURL(name string) string {
	return fmt.Sprintf("/uploads/%s", name)
}
