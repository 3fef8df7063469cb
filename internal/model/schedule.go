package model

import "gorm.io/gorm"

const (
	ScheduleOff    = "OFF"
	ScheduleSick   = "SICK"
	SchedulePermit = "PERMIT"
	ScheduleLeave  = "LEAVE"
)

func ValidScheduleStatus(s string) bool {
	switch s {
	case ScheduleOff, ScheduleSick, SchedulePermit, ScheduleLeave:
		return true
	}
	return false
}

// ScheduleEntry adalah deklarasi libur/izin, bukan event absensi.
// EmployeeID nil berarti berlaku global untuk semua pegawai yang tidak
// punya entry spesifik di tanggal itu. Tidak ada constraint unik:
// urutan prioritas diputuskan di ReportAggregator.
type ScheduleEntry struct {
	gorm.Model
	EmployeeID  *uint  `json:"employee_id"`
	Date        string `json:"date" gorm:"size:10;not null;index"`
	Status      string `json:"status" gorm:"size:10;not null"`
	Description string `json:"description"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
