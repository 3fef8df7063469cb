package handler

import (
	"errors"
	"strconv"
	"time"

	"attendance-backend/internal/access"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScheduleHandler struct {
	repo         repository.ScheduleRepository
	employeeRepo repository.EmployeeRepository
}

func NewScheduleHandler(repo repository.ScheduleRepository, employeeRepo repository.EmployeeRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, employeeRepo: employeeRepo}
}

type CreateScheduleRequest struct {
	EmployeeID  *uint  `json:"employee_id"` // nil berarti berlaku global
	Date        string `json:"date"`        // YYYY-MM-DD
	Status      string `json:"status"`      // OFF / SICK / PERMIT / LEAVE
	Description string `json:"description"`
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	viewer, err := h.employeeRepo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}
	if !viewer.Role.CanManageSchedule() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak berhak mengelola jadwal"})
	}

	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Tanggal harus benar-benar parseable: entry dengan tanggal rusak
	// tersimpan tapi tidak pernah muncul di laporan mana pun
	if _, err := time.Parse("2006-01-02", req.Date); err != nil || !model.ValidScheduleStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal atau status tidak valid"})
	}

	// Entry global hanya MANAGER/OWNER; SPV terbatas pegawai cabangnya
	if req.EmployeeID == nil {
		if !viewer.Role.CanSeeAllBranches() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Entry global hanya untuk manager"})
		}
	} else {
		target, err := h.employeeRepo.FindByID(*req.EmployeeID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
		}
		if !access.ScopeFor(*viewer).Allows(*target) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Pegawai di luar cabang Anda"})
		}
	}

	entry := model.ScheduleEntry{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Status:      req.Status,
		Description: req.Description,
	}
	if err := h.repo.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal"})
	}

	return c.JSON(fiber.Map{
		"message": "Jadwal berhasil dibuat",
		"data":    entry,
	})
}

func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	viewer, err := h.employeeRepo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}

	month := c.Query("month")
	year := c.Query("year")
	if len(month) == 1 {
		month = "0" + month
	}
	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter month dan year wajib diisi"})
	}

	entries, err := h.repo.GetByMonth(month, year, access.ScopeFor(*viewer))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}

	return c.JSON(fiber.Map{"data": entries})
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	viewer, err := h.employeeRepo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}
	if !viewer.Role.CanManageSchedule() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak berhak mengelola jadwal"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	entry, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}

	// Aturan sama dengan create: global hanya manager, spesifik per scope
	if entry.EmployeeID == nil {
		if !viewer.Role.CanSeeAllBranches() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Entry global hanya untuk manager"})
		}
	} else {
		scope := access.ScopeFor(*viewer)
		// Pemilik yang tidak bisa di-resolve (pegawai sudah dihapus)
		// hanya boleh dihapus viewer dengan scope semua cabang
		if entry.Employee == nil && !scope.All {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Pegawai di luar cabang Anda"})
		}
		if entry.Employee != nil && !scope.Allows(*entry.Employee) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Pegawai di luar cabang Anda"})
		}
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal"})
	}

	return c.JSON(fiber.Map{"message": "Jadwal berhasil dihapus"})
}
