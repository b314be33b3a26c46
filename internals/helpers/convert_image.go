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
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ConvertToWebP decode gambar upload (jpeg/png), resize maksimal maxW (0 = tanpa resize),
// lalu encode webp lossy quality 85.
func ConvertToWebP(fileHeader *multipart.FileHeader, maxW int) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung: %w", err)
	}

	if maxW > 0 && img.Bounds().Dx() > maxW {
		img = imaging.Resize(img, maxW, 0, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUploadedImage konversi ke webp dan simpan ke UPLOAD_DIR (default ./uploads),
// return path publik relatif (/uploads/...).
func SaveUploadedImage(folder string, fileHeader *multipart.FileHeader, maxW int) (string, error) {
	data, err := ConvertToWebP(fileHeader, maxW)
	if err != nil {
		return "", err
	}

	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "./uploads"
	}
	dir := filepath.Join(base, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)
	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return "/uploads/" + folder + "/" + filename, nil
}

// GenerateUniqueFilename → 20060102-uuid-nama_asli.webp
func GenerateUniqueFilename(originalFilename string) string {
	safe := reUnsafeFilename.ReplaceAllString(originalFilename, "_")
	ext := filepath.Ext(safe)
	if ext != "" {
		safe = safe[:len(safe)-len(ext)]
	}
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), safe)
}
