package repository

import (
	"attendance-backend/internal/access"
	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindByUsername(username string) (*model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	Update(employee *model.Employee) error
	GetAll() ([]model.Employee, error)
	GetRoster(scope access.Scope) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) FindByUsername(username string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("username = ?", username).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("role asc").Order("full_name asc").Find(&employees).Error
	return employees, err
}

// GetRoster mengambil pegawai wajib absen (OWNER dikecualikan) dalam scope.
func (r *employeeRepository) GetRoster(scope access.Scope) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.Where("role <> ?", model.RoleOwner).Order("full_name asc")

	if !scope.All {
		if scope.Branch != "" {
			query = query.Where("branch = ?", scope.Branch)
		} else {
			query = query.Where("id = ?", scope.EmployeeID)
		}
	}

	err := query.Find(&employees).Error
	return employees, err
}
