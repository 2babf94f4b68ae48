package service

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// richTextPolicy 正文/描述字段的消毒策略（UGC 白名单）
var richTextPolicy = bluemonday.UGCPolicy()

// embedPolicy 嵌入代码的消毒策略：仅保留 iframe 及其播放所需属性
var embedPolicy = newEmbedPolicy()

// allowedEmbedHosts iframe src 允许的播放器域名
var allowedEmbedHosts = map[string]struct{}{
	"www.youtube.com":          {},
	"youtube.com":              {},
	"www.youtube-nocookie.com": {},
	"player.vimeo.com":         {},
	"www.facebook.com":         {},
}

func newEmbedPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("iframe")
	p.AllowAttrs("src", "width", "height", "frameborder", "allow", "allowfullscreen", "title").OnElements("iframe")
	p.AllowURLSchemes("https")
	return p
}

// SanitizeRichText 消毒富文本 HTML
func SanitizeRichText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	return richTextPolicy.Sanitize(raw)
}

// SanitizeEmbedCode 消毒嵌入代码；iframe src 域名不在白名单时返回空串
func SanitizeEmbedCode(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(embedPolicy.Sanitize(trimmed))
	if cleaned == "" {
		return ""
	}
	src, ok := extractIframeSrc(cleaned)
	if !ok {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if _, ok := allowedEmbedHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return ""
	}
	return cleaned
}

func extractIframeSrc(fragment string) (string, bool) {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return "", false
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}
		token := tokenizer.Token()
		if token.Data != "iframe" {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key == "src" {
				return attr.Val, true
			}
		}
		return "", false
	}
}
