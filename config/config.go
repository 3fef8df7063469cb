package config

import (
	"os"
	"strconv"
	"time"

	"attendance-backend/internal/shift"
)

// Config dibangun sekali di main dan di-inject ke routes/handler.
// Grace period dan timezone sengaja parameter, bukan konstanta, karena
// nilainya beda antar deployment (lihat GRACE_PERIOD_MINUTES).
type Config struct {
	Port      string
	DSN       string
	JWTSecret []byte

	// Zona waktu organisasi untuk semua aritmatika tanggal/jam
	Location *time.Location
	Grace    time.Duration
	Catalog  shift.Catalog

	UploadDir string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() *Config {
	tzName := GetEnv("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		panic("Timezone tidak valid: " + tzName)
	}

	return &Config{
		Port:      GetEnv("PORT", ":3000"),
		DSN:       GetEnv("DATABASE_DSN", "root:@tcp(127.0.0.1:3306)/attendance_db?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret: []byte(GetEnv("JWT_SECRET", "rahasia_negara")),
		Location:  loc,
		Grace:     time.Duration(GetEnvAsInt("GRACE_PERIOD_MINUTES", 15)) * time.Minute,
		Catalog:   shift.Default(),
		UploadDir: GetEnv("UPLOAD_DIR", "./uploads"),
		SMTPHost:  GetEnv("SMTP_HOST", ""),
		SMTPPort:  GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:  GetEnv("SMTP_USER", ""),
		SMTPPass:  GetEnv("SMTP_PASS", ""),
		SMTPFrom:  GetEnv("SMTP_FROM", "no-reply@attendance.local"),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
