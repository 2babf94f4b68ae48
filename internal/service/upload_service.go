package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/newsroom-next/internal/blobstore"
	"github.com/newsroom-next/internal/config"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

// UploadService 文件上传服务，实际写入由对象存储后端完成
type UploadService struct {
	cfg   *config.Config
	store blobstore.Store
}

// NewUploadService 创建文件上传服务实例
func NewUploadService(cfg *config.Config, store blobstore.Store) *UploadService {
	return &UploadService{cfg: cfg, store: store}
}

// PresignedUpload 预签名直传结果
type PresignedUpload struct {
	UploadURL string `json:"uploadURL"`
	PublicURL string `json:"publicURL"`
	Filename  string `json:"filename"`
}

// SaveFile 校验并保存上传文件，返回公开访问地址
func (s *UploadService) SaveFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	// 验证文件大小
	if file.Size > s.cfg.Upload.MaxSize {
		return "", ValidationError(fmt.Sprintf("file exceeds the %d MB limit", s.cfg.Upload.MaxSize/1024/1024))
	}

	// 验证扩展名
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", ValidationError(fmt.Sprintf("file extension not allowed: %s", ext))
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil { // 重置文件读取位置
		return "", err
	}

	contentType := http.DetectContentType(buffer[:n])
	if len(s.cfg.Upload.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.cfg.Upload.AllowedTypes {
			if strings.EqualFold(contentType, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", ValidationError(fmt.Sprintf("file type not allowed: %s", contentType))
		}
	}

	name := uniqueObjectName(file.Filename)
	return s.store.Put(ctx, name, src, file.Size, contentType)
}

// Presign 生成直传 URL；filename 为必填，contentType 仅用于回显
func (s *UploadService) Presign(ctx context.Context, filename string) (*PresignedUpload, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, ValidationError("filename is required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return nil, ValidationError(fmt.Sprintf("file extension not allowed: %s", ext))
		}
	}

	name := uniqueObjectName(filename)
	expires := time.Duration(s.cfg.Blob.PresignExpireMinutes) * time.Minute
	if expires <= 0 {
		expires = 15 * time.Minute
	}

	uploadURL, err := s.store.PresignPut(ctx, name, expires)
	if err != nil {
		return nil, err
	}
	return &PresignedUpload{
		UploadURL: uploadURL,
		PublicURL: s.store.PublicURL(name),
		Filename:  name,
	}, nil
}

// uniqueObjectName 清洗文件名并加毫秒时间戳前缀，避免覆盖同名对象
func uniqueObjectName(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	base = strings.Join(strings.Fields(base), "-")
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}
