package usecase

import (
	"log"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/pkg/mailer"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	repo   repository.EmployeeRepository
	secret []byte
	mailer *mailer.Mailer
}

func NewAuthUsecase(repo repository.EmployeeRepository, secret []byte, m *mailer.Mailer) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: secret, mailer: m}
}

// Register membuat akun STAFF baru dengan is_approved=false.
// Akun belum bisa login atau absen sebelum disetujui MANAGER/OWNER.
func (u *AuthUsecase) Register(username, password, fullName, email, branch string) (*model.Employee, error) {
	if username == "" || password == "" || fullName == "" {
		return nil, ErrInvalidInput
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Username:   username,
		Password:   string(hashedPassword),
		FullName:   fullName,
		Email:      email,
		Branch:     branch,
		Role:       model.RoleStaff,
		IsApproved: false,
	}
	if err := u.repo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Login memverifikasi password dan gate approval, lalu menerbitkan JWT
// berisi identitas viewer (id, role, cabang) untuk middleware.
func (u *AuthUsecase) Login(username, password string) (string, *model.Employee, error) {
	employee, err := u.repo.FindByUsername(username)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", nil, err
	}

	if !employee.IsApproved {
		return "", nil, ErrNotApproved
	}

	claims := jwt.MapClaims{
		"user_id": employee.ID,
		"role":    string(employee.Role),
		"branch":  employee.Branch,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, employee, nil
}

// Approve menyetujui akun pegawai. Hanya MANAGER/OWNER.
// Email notifikasi best-effort: gagal kirim tidak membatalkan approval.
func (u *AuthUsecase) Approve(employeeID uint, approver model.Employee) (*model.Employee, error) {
	if !approver.Role.CanApproveAccounts() {
		return nil, ErrUnauthorized
	}

	employee, err := u.repo.FindByID(employeeID)
	if err != nil {
		return nil, err
	}

	employee.IsApproved = true
	if err := u.repo.Update(employee); err != nil {
		return nil, err
	}

	if err := u.mailer.SendApprovalNotice(employee.Email, employee.FullName); err != nil {
		log.Println("Gagal kirim email approval:", err)
	}
	return employee, nil
}
