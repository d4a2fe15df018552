package helper

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadRawIsRetrievableUntilDeleted(t *testing.T) {
	store := NewMemoryStore()
	svc := NewStorageService(store, "school", DefaultWebPOptions(), 1024)
	ctx := context.Background()

	url, err := svc.UploadRaw(ctx, "notices", &FilePart{Filename: "Jadwal Ujian.pdf", Data: []byte("%PDF-1.4 ...")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "mem://school/notices/jadwal-ujian_"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	data, ok := store.Get(url)
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF-1.4 ..."), data)

	require.NoError(t, svc.DeleteByPublicURL(ctx, url))
	_, ok = store.Get(url)
	assert.False(t, ok)
}

func TestUploadRejectsEmptyAndOversized(t *testing.T) {
	svc := NewStorageService(NewMemoryStore(), "", DefaultWebPOptions(), 4)

	_, err := svc.UploadRaw(context.Background(), "x", &FilePart{Filename: "a.txt"})
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = svc.UploadRaw(context.Background(), "x", &FilePart{Filename: "a.txt", Data: []byte("12345")})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadImageReencodesToWebP(t *testing.T) {
	store := NewMemoryStore()
	opts := DefaultWebPOptions()
	opts.MaxW, opts.MaxH = 16, 16
	svc := NewStorageService(store, "", opts, 0)

	url, err := svc.UploadImage(context.Background(), "gallery", &FilePart{Filename: "Sports Day.png", Data: pngBytes(t, 64, 32)})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".webp"))

	data, ok := store.Get(url)
	require.True(t, ok)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	store := NewMemoryStore()
	svc := NewStorageService(store, "", DefaultWebPOptions(), 0)

	_, err := svc.UploadImage(context.Background(), "teachers", &FilePart{Filename: "cv.pdf", Data: []byte("%PDF-1.4")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Zero(t, store.Len())
}

func TestUploadPropagatesStoreFailure(t *testing.T) {
	store := NewMemoryStore()
	store.PutErr = errors.New("bucket down")
	svc := NewStorageService(store, "", DefaultWebPOptions(), 0)

	_, err := svc.UploadRaw(context.Background(), "x", &FilePart{Filename: "a.txt", Data: []byte("a")})
	assert.ErrorContains(t, err, "bucket down")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "foto-guru-emile", slugify("  Foto Guru Émile "))
	assert.Equal(t, "a-b", slugify("a__b"))
	assert.Equal(t, "file", slugify("???"))
}

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("/school/", "teachers", "../../etc/Pass Wd.JPG")
	assert.True(t, strings.HasPrefix(key, "school/teachers/pass-wd_"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
	assert.NotContains(t, key, "..")
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)
	svc := NewStorageService(store, "school", DefaultWebPOptions(), 0)
	ctx := context.Background()

	url, err := svc.UploadRaw(ctx, "notices", &FilePart{Filename: "n.pdf", Data: []byte("pdf")})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/school/notices/"))

	key, err := store.KeyFromPublicURL(url)
	require.NoError(t, err)
	onDisk := filepath.Join(dir, key)
	got, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(got))

	require.NoError(t, svc.DeleteByPublicURL(ctx, url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// hapus kedua kali tetap sukses
	require.NoError(t, svc.DeleteByPublicURL(ctx, url))
}

func TestLocalStoreKeyFromForeignURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	_, err = store.KeyFromPublicURL("https://elsewhere.example/a.png")
	assert.Error(t, err)
}

func TestOSSKeyFromPublicURL(t *testing.T) {
	s := &OSSService{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "school"}
	url := s.PublicURL("school/teachers/a.webp")
	assert.Equal(t, "https://school.oss-ap-southeast-5.aliyuncs.com/school/teachers/a.webp", url)

	key, err := s.KeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, "school/teachers/a.webp", key)

	s.PublicBase = "https://cdn.school.example"
	key, err = s.KeyFromPublicURL("https://cdn.school.example/x/y.pdf")
	require.NoError(t, err)
	assert.Equal(t, "x/y.pdf", key)
}

func TestFilePartFromHeader(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="bob.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("png-bytes"))
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	fh := form.File["photo"][0]

	fp, err := FilePartFromHeader(fh, 1024)
	require.NoError(t, err)
	assert.Equal(t, "bob.png", fp.Filename)
	assert.Equal(t, "image/png", fp.ContentType)
	assert.Equal(t, []byte("png-bytes"), fp.Data)

	_, err = FilePartFromHeader(fh, 3)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
