package access

import (
	"testing"

	"attendance-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func employee(id uint, role model.Role, branch string) model.Employee {
	return model.Employee{Model: gorm.Model{ID: id}, Role: role, Branch: branch}
}

func TestScopeFor(t *testing.T) {
	assert.Equal(t, Scope{All: true}, ScopeFor(employee(1, model.RoleOwner, "Pusat")))
	assert.Equal(t, Scope{All: true}, ScopeFor(employee(2, model.RoleManager, "Pusat")))
	assert.Equal(t, Scope{Branch: "Jakbar"}, ScopeFor(employee(3, model.RoleSupervisor, "Jakbar")))
	assert.Equal(t, Scope{EmployeeID: 4}, ScopeFor(employee(4, model.RoleStaff, "Jakbar")))
}

func TestSupervisorNeverSeesOtherBranch(t *testing.T) {
	scope := ScopeFor(employee(3, model.RoleSupervisor, "Jakbar"))

	assert.True(t, scope.Allows(employee(4, model.RoleStaff, "Jakbar")))
	assert.False(t, scope.Allows(employee(5, model.RoleStaff, "Cabang 2")))
	assert.False(t, scope.Allows(employee(6, model.RoleSupervisor, "Cabang 2")))
}

func TestStaffSeesOnlySelf(t *testing.T) {
	scope := ScopeFor(employee(4, model.RoleStaff, "Jakbar"))

	assert.True(t, scope.Allows(employee(4, model.RoleStaff, "Jakbar")))
	assert.False(t, scope.Allows(employee(5, model.RoleStaff, "Jakbar")))
}

func TestManagerSeesAllBranches(t *testing.T) {
	scope := ScopeFor(employee(2, model.RoleManager, "Pusat"))

	assert.True(t, scope.Allows(employee(4, model.RoleStaff, "Jakbar")))
	assert.True(t, scope.Allows(employee(5, model.RoleStaff, "Cabang 2")))
}
