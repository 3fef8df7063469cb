package repository

import (
	"attendance-backend/internal/access"
	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(entry *model.ScheduleEntry) error
	GetByID(id uint) (*model.ScheduleEntry, error)
	Delete(id uint) error
	GetByMonth(month string, year string, scope access.Scope) ([]model.ScheduleEntry, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) Create(entry *model.ScheduleEntry) error {
	return r.db.Create(entry).Error
}

func (r *scheduleRepository) GetByID(id uint) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.Preload("Employee").First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Delete(&model.ScheduleEntry{}, id).Error
}

// GetByMonth mengambil entry global (employee_id NULL) plus entry spesifik
// milik pegawai dalam scope. Entry global selalu ikut karena berlaku untuk
// siapa pun tanpa entry spesifik di tanggal itu.
func (r *scheduleRepository) GetByMonth(month string, year string, scope access.Scope) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	datePattern := year + "-" + month + "%"
	query := r.db.Preload("Employee").Where("date LIKE ?", datePattern)

	if !scope.All {
		if scope.Branch != "" {
			query = query.Where("employee_id IS NULL OR employee_id IN (SELECT id FROM employees WHERE branch = ?)", scope.Branch)
		} else {
			query = query.Where("employee_id IS NULL OR employee_id = ?", scope.EmployeeID)
		}
	}

	err := query.Order("id asc").Find(&list).Error
	return list, err
}
