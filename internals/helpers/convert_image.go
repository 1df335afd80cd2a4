package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"sigapbanjar_backend/internals/configs"
)

// SaveUploadedPhoto menyimpan foto upload ke direktori lokal sebagai webp.
// Gambar di-resize maksimal 1280px supaya ukuran file masuk akal di lapangan
// dengan sinyal seadanya.
func SaveUploadedPhoto(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("gagal decode gambar: %w", err)
	}

	if img.Bounds().Dx() > 1280 || img.Bounds().Dy() > 1280 {
		img = imaging.Fit(img, 1280, 1280, imaging.Lanczos)
	}

	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan direktori upload: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.webp", time.Now().Format("20060102150405"), uuid.New().String())
	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file upload: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	return filepath.Join(folder, filename), nil
}

// PhotoURL mengembalikan URL publik foto, atau string kosong bila file
// sudah tidak ada. File hilang bukan error: tampil sebagai "tanpa foto".
func PhotoURL(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(configs.UploadDir, *path)); err != nil {
		return ""
	}
	return "/uploads/" + filepath.ToSlash(*path)
}
