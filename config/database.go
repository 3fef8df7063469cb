package config

import (
	"log"

	"attendance-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(cfg *Config) {
	// TranslateError penting: pelanggaran unique index (employee_id, date)
	// harus muncul sebagai gorm.ErrDuplicatedKey, bukan error driver mentah.
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	log.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel berdasarkan struct di folder model
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.Attendance{})
	db.AutoMigrate(&model.ScheduleEntry{})

	DB = db
}
