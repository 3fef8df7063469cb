package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role" gorm:"size:20;not null"`
	Branch   string `json:"branch"` // kosong untuk role lintas cabang

	// Akun baru belum bisa login/absen sebelum disetujui MANAGER/OWNER
	IsApproved bool `json:"is_approved" gorm:"default:false"`

	Attendances []Attendance `json:"-" gorm:"foreignKey:EmployeeID"`
}
