package service

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	youtubePattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/watch\?v=)([^&\s]+)`)
	vimeoPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// DeriveEmbedURL 把 YouTube/Vimeo 页面链接转换为播放器嵌入地址。
// 无法识别的输入返回 ok=false，调用方直接省略 embedUrl 字段。
func DeriveEmbedURL(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	if m := youtubePattern.FindStringSubmatch(value); m != nil {
		return fmt.Sprintf("https://www.youtube.com/embed/%s", m[1]), true
	}
	if m := vimeoPattern.FindStringSubmatch(value); m != nil {
		return fmt.Sprintf("https://player.vimeo.com/video/%s", m[1]), true
	}
	return "", false
}
