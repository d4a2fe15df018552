package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

/* =======================================================================
   Konfigurasi WebP
======================================================================= */

type WebPOptions struct {
	MaxW     int     // batas lebar (resize keep-aspect)
	MaxH     int     // batas tinggi
	Quality  float32 // 0..100
	TargetKB int     // 0 = non-aktif (pakai Quality saja)
	MinQ     float32 // batas bawah binary search quality
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80, MinQ: 45}
}

/* =======================================================================
   Decode → resize (opsional) → encode webp
======================================================================= */

// ConvertToWebP mendecode jpeg/png/webp (orientasi EXIF dihormati) lalu encode ulang ke webp.
func ConvertToWebP(data []byte, filename string, opt WebPOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, filename, err)
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)
	return encodeToWebP(img, opt)
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
		return buf.Bytes(), nil
	}

	q := opt.Quality
	if q <= 0 || q > 100 {
		q = 80
	}
	data, err := encodeQ(q)
	if err != nil || opt.TargetKB <= 0 || len(data) <= opt.TargetKB*1024 {
		return data, err
	}

	// binary search quality sampai <= target
	low, high := opt.MinQ, q
	if low <= 0 || low >= high {
		low = high / 2
	}
	best := data
	for i := 0; i < 7; i++ {
		mid := (low + high) / 2
		cand, err := encodeQ(mid)
		if err != nil {
			return nil, err
		}
		if len(cand) <= opt.TargetKB*1024 {
			best = cand
			low = mid
		} else {
			high = mid
			if len(cand) < len(best) {
				best = cand
			}
		}
	}
	return best, nil
}
