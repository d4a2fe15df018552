package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

func init() {
	_ = mime.AddExtensionType(".webp", "image/webp")
}

// buildObjectKey: {prefix}/{dir}/{slug}_{yyyymmdd_hhmmss}_{rand6}{ext}
func buildObjectKey(prefix, dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	parts := make([]string, 0, 3)
	for _, p := range []string{prefix, dir} {
		if p = strings.Trim(strings.TrimSpace(p), "/"); p != "" {
			parts = append(parts, p)
		}
	}
	name := fmt.Sprintf("%s_%s_%s%s", slugify(base), time.Now().Format("20060102_150405"), randHex(3), sanitizeExt(ext))
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

// slugify: "Foto Guru Émile" → "foto-guru-emile"
func slugify(s string) string {
	s = norm.NFKD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "file"
	}
	return out
}

func sanitizeExt(ext string) string {
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, ext)
	if clean == "." {
		return ""
	}
	return clean
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// detectContentType: ekstensi dulu, lalu sniff 512B, lalu header dari client.
func detectContentType(data []byte, filename, declared string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".pdf":
		return "application/pdf"
	}
	ct := mime.TypeByExtension(ext)
	if ct == "" || ct == "application/octet-stream" {
		head := data
		if len(head) > 512 {
			head = head[:512]
		}
		if len(head) > 0 {
			ct = http.DetectContentType(head)
		}
	}
	if (ct == "" || ct == "application/octet-stream") && declared != "" {
		ct = declared
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
