package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	coverMaxWidth  = 600
	coverMaxHeight = 900
	coverQuality   = 80
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ConvertCoverToWebP decode upload (jpeg/png/webp), downscale ke batas sampul,
// lalu encode ulang sebagai webp lossy.
func ConvertCoverToWebP(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung: %w", err)
	}

	// Downscale hanya jika melebihi batas (imaging.Fit menjaga rasio)
	b := img.Bounds()
	if b.Dx() > coverMaxWidth || b.Dy() > coverMaxHeight {
		img = imaging.Fit(img, coverMaxWidth, coverMaxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: coverQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveCoverImage simpan hasil konversi ke folder upload lokal dan
// kembalikan path publiknya.
func SaveCoverImage(folder string, originalName string, data []byte) (string, error) {
	dir := filepath.Join(GetUploadRoot(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	name := GenerateUniqueFilename(originalName)
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}

// GenerateUniqueFilename bikin nama unik: <timestamp>-<uuid8>-<base>.webp
func GenerateUniqueFilename(original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = reUnsafeFilename.ReplaceAllString(base, "-")
	if len(base) > 40 {
		base = base[:40]
	}
	if base == "" {
		base = "cover"
	}
	return fmt.Sprintf("%d-%s-%s.webp", time.Now().Unix(), uuid.NewString()[:8], base)
}

func GetUploadRoot() string {
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		return v
	}
	return "./uploads"
}
