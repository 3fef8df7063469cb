package handler

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// viewerID mengambil id viewer dari Locals (diset di Auth middleware).
// Claims JWT numerik selalu float64.
func viewerID(c *fiber.Ctx) uint {
	return uint(c.Locals("user_id").(float64))
}

// savePhoto menyimpan foto bukti absen (base64 dari client) ke disk dan
// mengembalikan path-nya. Foto kosong bukan error: referensinya saja
// yang disimpan, tidak ada validasi isi.
func savePhoto(uploadDir, photo string) (string, error) {
	if photo == "" {
		return "", nil
	}

	// Client kadang mengirim data URI ("data:image/jpeg;base64,....")
	if idx := strings.Index(photo, ","); idx != -1 && strings.HasPrefix(photo, "data:") {
		photo = photo[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(photo)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(uploadDir, "attendance")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.jpg", uuid.NewString()))
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", err
	}
	return path, nil
}
