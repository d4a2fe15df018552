package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrEmptyFile        = errors.New("empty file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

/*
BlobService adalah facade upload/hapus yang seragam untuk lifecycle manager.
Reference yang dikembalikan selalu public URL; itu yang disimpan di DB.
*/
type BlobService interface {
	// UploadImage: recompress ke webp lalu upload.
	UploadImage(ctx context.Context, dir string, file *FilePart) (publicURL string, err error)
	// UploadRaw: upload apa adanya (pdf, dsb).
	UploadRaw(ctx context.Context, dir string, file *FilePart) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// ObjectStore adalah driver penyimpanan di bawah BlobService (OSS, disk lokal, memory).
type ObjectStore interface {
	PutObject(ctx context.Context, key string, r io.Reader, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromPublicURL(publicURL string) (string, error)
}

// FilePart adalah file upload yang sudah dibaca ke memori.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f *FilePart) Size() int64 { return int64(len(f.Data)) }

// FilePartFromHeader membaca multipart file dengan batas ukuran.
func FilePartFromHeader(fh *multipart.FileHeader, maxSize int64) (*FilePart, error) {
	if fh == nil {
		return nil, ErrEmptyFile
	}
	if maxSize > 0 && fh.Size > maxSize {
		return nil, fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, maxSize)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	var r io.Reader = src
	if maxSize > 0 {
		r = io.LimitReader(src, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, maxSize)
	}
	return &FilePart{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

// --------------------------------------------------
// Implementasi umum di atas ObjectStore
// --------------------------------------------------

type StorageService struct {
	Store         ObjectStore
	Prefix        string
	WebP          WebPOptions
	MaxUploadSize int64
}

func NewStorageService(store ObjectStore, prefix string, webp WebPOptions, maxUploadSize int64) *StorageService {
	return &StorageService{
		Store:         store,
		Prefix:        strings.Trim(prefix, "/"),
		WebP:          webp,
		MaxUploadSize: maxUploadSize,
	}
}

func (s *StorageService) UploadImage(ctx context.Context, dir string, file *FilePart) (string, error) {
	if err := s.checkFile(file); err != nil {
		return "", err
	}
	webpData, err := ConvertToWebP(file.Data, file.Filename, s.WebP)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	key := buildObjectKey(s.Prefix, dir, base+".webp")
	if err := s.Store.PutObject(ctx, key, bytes.NewReader(webpData), "image/webp"); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.Store.PublicURL(key), nil
}

func (s *StorageService) UploadRaw(ctx context.Context, dir string, file *FilePart) (string, error) {
	if err := s.checkFile(file); err != nil {
		return "", err
	}
	key := buildObjectKey(s.Prefix, dir, file.Filename)
	ct := detectContentType(file.Data, file.Filename, file.ContentType)
	if err := s.Store.PutObject(ctx, key, bytes.NewReader(file.Data), ct); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.Store.PublicURL(key), nil
}

func (s *StorageService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fmt.Errorf("empty public url")
	}
	key, err := s.Store.KeyFromPublicURL(publicURL)
	if err != nil {
		return fmt.Errorf("extract key: %w", err)
	}
	return s.Store.DeleteObject(ctx, key)
}

func (s *StorageService) checkFile(file *FilePart) error {
	if file == nil || len(file.Data) == 0 {
		return ErrEmptyFile
	}
	if s.MaxUploadSize > 0 && file.Size() > s.MaxUploadSize {
		return fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, s.MaxUploadSize)
	}
	return nil
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// GetFormFile mengambil file dari field pertama yang ada.
// Tidak ada file → (nil, nil) supaya validasi required tetap di service.
func GetFormFile(c *fiber.Ctx, maxSize int64, fieldNames ...string) (*FilePart, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	for _, fn := range fieldNames {
		fh, err := c.FormFile(fn)
		if err != nil || fh == nil {
			continue
		}
		if fh.Size == 0 {
			return nil, nil
		}
		return FilePartFromHeader(fh, maxSize)
	}
	return nil, nil
}

// UploadErrorMessage: pesan 400 untuk error dari GetFormFile.
func UploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "File is too large"
	case errors.Is(err, ErrEmptyFile):
		return "Uploaded file is empty"
	default:
		return "Invalid file upload"
	}
}
