package model

// Role adalah hirarki tertutup: STAFF < SPV < MANAGER < OWNER.
// Semua pengecekan hak akses lewat predicate di bawah, bukan
// perbandingan string yang tersebar di handler.
type Role string

const (
	RoleStaff      Role = "STAFF"
	RoleSupervisor Role = "SPV"
	RoleManager    Role = "MANAGER"
	RoleOwner      Role = "OWNER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleSupervisor, RoleManager, RoleOwner:
		return true
	}
	return false
}

// CanSeeAllBranches: MANAGER/OWNER melihat semua cabang.
func (r Role) CanSeeAllBranches() bool {
	return r == RoleManager || r == RoleOwner
}

// CanApproveOvertime: semua kecuali STAFF. SPV tetap dibatasi ke
// cabangnya sendiri; pengecekan cabang ada di usecase.
func (r Role) CanApproveOvertime() bool {
	return r != RoleStaff
}

// CanManageSchedule: SPV ke atas boleh membuat/menghapus jadwal libur.
func (r Role) CanManageSchedule() bool {
	return r == RoleSupervisor || r == RoleManager || r == RoleOwner
}

// CanApproveAccounts: approval akun baru hanya MANAGER/OWNER.
func (r Role) CanApproveAccounts() bool {
	return r == RoleManager || r == RoleOwner
}

// RequiresAttendance: OWNER tidak wajib absen dan tidak masuk laporan.
func (r Role) RequiresAttendance() bool {
	return r != RoleOwner
}

// SupervisorTier menentukan kode shift mana yang dipakai di laporan
// (kode angka untuk SPV/MANAGER, kode huruf untuk STAFF).
func (r Role) SupervisorTier() bool {
	return r != RoleStaff
}
