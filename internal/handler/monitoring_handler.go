package handler

import (
	"time"

	"attendance-backend/internal/access"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// MonitoringHandler adalah satu jalur untuk semua role; perbedaan
// pandangan antar role datang dari Scope, bukan percabangan per role.
type MonitoringHandler struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	loc            *time.Location
}

func NewMonitoringHandler(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository, loc *time.Location) *MonitoringHandler {
	return &MonitoringHandler{attendanceRepo: attendanceRepo, employeeRepo: employeeRepo, loc: loc}
}

// Today mengembalikan record absensi hari ini yang terlihat oleh viewer.
func (h *MonitoringHandler) Today(c *fiber.Ctx) error {
	viewer, err := h.employeeRepo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}

	today := time.Now().In(h.loc).Format("2006-01-02")
	records, err := h.attendanceRepo.GetByDate(today, access.ScopeFor(*viewer))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data monitoring"})
	}

	return c.JSON(fiber.Map{
		"date": today,
		"data": records,
	})
}
