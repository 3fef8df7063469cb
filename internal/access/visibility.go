package access

import "attendance-backend/internal/model"

// Scope membatasi record siapa saja yang boleh dibaca viewer.
// Dipakai seragam oleh monitoring, listing jadwal, dan input laporan,
// jadi laporan tidak pernah memuat data yang tidak terlihat di layar
// monitoring viewer yang sama.
type Scope struct {
	All        bool
	Branch     string
	EmployeeID uint
}

// ScopeFor menurunkan scope dari role viewer:
// OWNER/MANAGER semua cabang, SPV cabangnya sendiri, STAFF dirinya sendiri.
func ScopeFor(viewer model.Employee) Scope {
	if viewer.Role.CanSeeAllBranches() {
		return Scope{All: true}
	}
	if viewer.Role == model.RoleSupervisor {
		return Scope{Branch: viewer.Branch}
	}
	return Scope{EmployeeID: viewer.ID}
}

// Allows mengecek apakah record milik target boleh dilihat dalam scope ini.
func (s Scope) Allows(target model.Employee) bool {
	if s.All {
		return true
	}
	if s.Branch != "" {
		return target.Branch == s.Branch
	}
	return target.ID == s.EmployeeID
}
