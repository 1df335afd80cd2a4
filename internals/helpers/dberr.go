package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Klasifikasi error storage supaya caller bisa bereaksi beda:
// duplikat (409), tidak ditemukan (404), sisanya kegagalan persistensi (500).

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	// driver sqlite (dipakai di test) tidak mengekspos error code yang sama
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// StorageError memetakan error DB ke response yang tepat.
func StorageError(c *fiber.Ctx, err error, duplicateMsg, notFoundMsg string) error {
	switch {
	case IsDuplicateKey(err):
		return Error(c, fiber.StatusConflict, duplicateMsg)
	case IsNotFound(err):
		return Error(c, fiber.StatusNotFound, notFoundMsg)
	default:
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada penyimpanan data")
	}
}
