package handler

import (
	"errors"
	"strconv"
	"time"

	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase   *usecase.AttendanceUsecase
	repo      repository.EmployeeRepository
	uploadDir string
	loc       *time.Location
}

func NewAttendanceHandler(u *usecase.AttendanceUsecase, repo repository.EmployeeRepository, uploadDir string, loc *time.Location) *AttendanceHandler {
	return &AttendanceHandler{usecase: u, repo: repo, uploadDir: uploadDir, loc: loc}
}

type CheckInRequest struct {
	Shift     string  `json:"shift"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Photo     string  `json:"photo"`     // base64, opsional
	Timestamp string  `json:"timestamp"` // override opsional, waktu lokal organisasi
}

type CheckOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Photo     string  `json:"photo"`
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Semua input divalidasi sebelum ada tulisan ke store
	var at *time.Time
	if req.Timestamp != "" {
		parsed, err := h.parseTimestamp(req.Timestamp)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format timestamp tidak valid"})
		}
		at = &parsed
	}

	photoPath, err := savePhoto(h.uploadDir, req.Photo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto tidak valid"})
	}

	attendance, err := h.usecase.CheckIn(viewerID(c), req.Shift, at, req.Latitude, req.Longitude, photoPath)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyCheckedIn):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah melakukan check-in hari ini"})
		case errors.Is(err, usecase.ErrNotApproved):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun belum disetujui"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absensi"})
	}

	return c.JSON(fiber.Map{
		"message": "Check-in berhasil",
		"status":  attendance.Status,
		"data":    attendance,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var req CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	photoPath, err := savePhoto(h.uploadDir, req.Photo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Foto tidak valid"})
	}

	attendance, err := h.usecase.CheckOut(viewerID(c), req.Latitude, req.Longitude, photoPath)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoCheckInFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Belum ada check-in hari ini"})
		case errors.Is(err, usecase.ErrAlreadyCheckedOut):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah melakukan check-out"})
		case errors.Is(err, usecase.ErrInvalidCheckOut):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Waktu check-out tidak valid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data pulang"})
	}

	return c.JSON(fiber.Map{
		"message":  "Check-out berhasil",
		"duration": attendance.DurationMinutes,
		"data":     attendance,
	})
}

func (h *AttendanceHandler) GetStatus(c *fiber.Ctx) error {
	state, attendance, err := h.usecase.CurrentStatus(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil status"})
	}

	resp := fiber.Map{"status": state}
	if attendance != nil {
		resp["shift"] = attendance.ShiftName
		resp["data"] = attendance
		resp["potential_overtime"] = h.usecase.PotentialOvertime(attendance)
	}
	return c.JSON(resp)
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	history, err := h.usecase.History(viewerID(c), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    history,
	})
}

// ApproveOvertime membekukan menit lembur ke record. SPV hanya untuk
// pegawai cabangnya sendiri; pengecekan ada di usecase.
func (h *AttendanceHandler) ApproveOvertime(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	approver, err := h.repo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}

	attendance, err := h.usecase.ApproveOvertime(uint(id), *approver)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak berhak menyetujui lembur"})
		case errors.Is(err, usecase.ErrNotCheckedOut):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Record belum check-out"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyetujui lembur"})
	}

	return c.JSON(fiber.Map{
		"message":          "Lembur disetujui",
		"overtime_minutes": attendance.OvertimeMinutes,
		"data":             attendance,
	})
}

func (h *AttendanceHandler) parseTimestamp(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, h.loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
