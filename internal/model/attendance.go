package model

import (
	"time"

	"gorm.io/gorm"
)

// Attendance: satu record per (employee, tanggal). Unique index di bawah
// yang menjaga invariant itu saat dua check-in datang bersamaan.
type Attendance struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"uniqueIndex:idx_employee_date;not null"`
	Date       string `json:"date" gorm:"uniqueIndex:idx_employee_date;size:10;not null"` // YYYY-MM-DD zona organisasi
	ShiftName  string `json:"shift_name"`

	CheckInTime  *time.Time `json:"check_in_time"`
	CheckInLat   float64    `json:"check_in_lat"`
	CheckInLng   float64    `json:"check_in_lng"`
	CheckInPhoto string     `json:"check_in_photo"`

	CheckOutTime  *time.Time `json:"check_out_time"`
	CheckOutLat   float64    `json:"check_out_lat"`
	CheckOutLng   float64    `json:"check_out_lng"`
	CheckOutPhoto string     `json:"check_out_photo"`

	Status string `json:"status"` // HADIR / TERLAMBAT, dihitung sekali saat check-in

	OvertimeApproved bool `json:"overtime_approved" gorm:"default:false"`
	OvertimeMinutes  int  `json:"overtime_minutes" gorm:"default:0"`
	DurationMinutes  int  `json:"duration_minutes" gorm:"default:0"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}
