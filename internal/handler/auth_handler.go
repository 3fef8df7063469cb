package handler

import (
	"errors"
	"strconv"

	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
	repo    repository.EmployeeRepository
}

func NewAuthHandler(u *usecase.AuthUsecase, repo repository.EmployeeRepository) *AuthHandler {
	return &AuthHandler{usecase: u, repo: repo}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Branch   string `json:"branch"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	employee, err := h.usecase.Register(req.Username, req.Password, req.FullName, req.Email, req.Branch)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username, password, dan nama wajib diisi"})
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username sudah dipakai"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal registrasi"})
	}

	return c.JSON(fiber.Map{
		"message": "Registrasi berhasil. Tunggu persetujuan manager.",
		"data":    employee,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	token, employee, err := h.usecase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrNotApproved) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun belum disetujui"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"username":  employee.Username,
			"full_name": employee.FullName,
			"role":      employee.Role,
			"branch":    employee.Branch,
		},
	})
}

// Approve menyetujui akun pegawai baru. Route sudah dibatasi
// MANAGER/OWNER, tapi usecase tetap mengecek capability approver.
func (h *AuthHandler) Approve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	approver, err := h.repo.FindByID(viewerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
	}

	employee, err := h.usecase.Approve(uint(id), *approver)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak berhak menyetujui akun"})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pegawai tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyetujui akun"})
	}

	return c.JSON(fiber.Map{
		"message": "Akun berhasil disetujui",
		"data":    employee,
	})
}

func (h *AuthHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
	}
	return c.JSON(fiber.Map{"data": employees})
}
