package repository

import (
	"attendance-backend/internal/access"
	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(attendance *model.Attendance) error
	GetByEmployeeAndDate(employeeID uint, date string) (*model.Attendance, error)
	GetByID(id uint) (*model.Attendance, error)
	Update(attendance *model.Attendance) error
	GetHistory(employeeID uint, limit int) ([]model.Attendance, error)
	GetByDate(date string, scope access.Scope) ([]model.Attendance, error)
	GetByMonth(month string, year string, scope access.Scope) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) GetByEmployeeAndDate(employeeID uint, date string) (*model.Attendance, error) {
	var attendance model.Attendance
	// Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).Limit(1).Find(&attendance).Error
	if err != nil {
		return nil, err
	}
	if attendance.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &attendance, nil
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Preload("Employee").First(&attendance, id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

func (r *attendanceRepository) GetHistory(employeeID uint, limit int) ([]model.Attendance, error) {
	var history []model.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date desc").Limit(limit).Find(&history).Error
	return history, err
}

func (r *attendanceRepository) GetByDate(date string, scope access.Scope) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.scoped(scope).Preload("Employee").
		Where("attendances.date = ?", date).
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(month string, year string, scope access.Scope) ([]model.Attendance, error) {
	var list []model.Attendance
	datePattern := year + "-" + month + "%"
	err := r.scoped(scope).Preload("Employee").
		Where("attendances.date LIKE ?", datePattern).
		Order("attendances.date asc").
		Find(&list).Error
	return list, err
}

// scoped menerapkan VisibilityFilter di level query: join ke employees
// untuk filter cabang, atau filter employee_id untuk STAFF.
func (r *attendanceRepository) scoped(scope access.Scope) *gorm.DB {
	query := r.db.Model(&model.Attendance{})
	if scope.All {
		return query
	}
	if scope.Branch != "" {
		return query.Joins("JOIN employees ON employees.id = attendances.employee_id").
			Where("employees.branch = ?", scope.Branch)
	}
	return query.Where("attendances.employee_id = ?", scope.EmployeeID)
}
