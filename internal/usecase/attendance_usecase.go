package usecase

import (
	"errors"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/shift"

	"gorm.io/gorm"
)

// Status harian untuk endpoint /status.
const (
	DayStateNone       = "None"
	DayStateCheckedIn  = "CheckedIn"
	DayStateCheckedOut = "CheckedOut"
)

const defaultHistoryLimit = 30

// AttendanceUsecase memegang state machine ledger:
// NoRecord -> CheckedIn -> CheckedOut, plus flag OvertimeApproved yang
// hanya bisa diset setelah CheckedOut. Tidak ada jalan kembali ke NoRecord.
type AttendanceUsecase struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository

	catalog shift.Catalog
	grace   time.Duration
	loc     *time.Location

	now func() time.Time
}

func NewAttendanceUsecase(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository, catalog shift.Catalog, grace time.Duration, loc *time.Location) *AttendanceUsecase {
	return &AttendanceUsecase{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		catalog:        catalog,
		grace:          grace,
		loc:            loc,
		now:            time.Now,
	}
}

// CheckIn membuat record hari ini. Status dihitung sekali di sini dan
// tidak pernah dihitung ulang. Race dua check-in bersamaan ditangkap
// unique index (employee_id, date): penulis kedua dapat ErrAlreadyCheckedIn.
func (u *AttendanceUsecase) CheckIn(employeeID uint, shiftName string, at *time.Time, lat, lng float64, photo string) (*model.Attendance, error) {
	employee, err := u.employeeRepo.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsApproved {
		return nil, ErrNotApproved
	}

	now := u.now().In(u.loc)
	if at != nil {
		now = at.In(u.loc)
	}
	date := now.Format("2006-01-02")

	existing, err := u.attendanceRepo.GetByEmployeeAndDate(employeeID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn := now
	attendance := &model.Attendance{
		EmployeeID:   employeeID,
		Date:         date,
		ShiftName:    shiftName,
		CheckInTime:  &checkIn,
		CheckInLat:   lat,
		CheckInLng:   lng,
		CheckInPhoto: photo,
		Status:       shift.Classify(now, shiftName, u.catalog, u.grace, u.loc),
	}

	if err := u.attendanceRepo.Create(attendance); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return attendance, nil
}

// CheckOut mengisi field pulang tepat sekali dan menghitung durasi dalam
// menit utuh. Check-in yang tersimpan tanpa zona dibaca sebagai waktu
// lokal organisasi, bukan UTC.
func (u *AttendanceUsecase) CheckOut(employeeID uint, lat, lng float64, photo string) (*model.Attendance, error) {
	now := u.now().In(u.loc)
	date := now.Format("2006-01-02")

	attendance, err := u.attendanceRepo.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCheckInFound
		}
		return nil, err
	}

	if attendance.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	checkIn := shift.AsLocal(*attendance.CheckInTime, u.loc)
	if !now.After(checkIn) {
		return nil, ErrInvalidCheckOut
	}

	checkOut := now
	attendance.CheckOutTime = &checkOut
	attendance.CheckOutLat = lat
	attendance.CheckOutLng = lng
	attendance.CheckOutPhoto = photo
	attendance.DurationMinutes = int(now.Sub(checkIn).Minutes())

	if err := u.attendanceRepo.Update(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ApproveOvertime membekukan menit lembur hasil hitung dari check-out
// yang tersimpan. Approve dua kali idempotent karena check-out tidak
// berubah setelah diset.
func (u *AttendanceUsecase) ApproveOvertime(recordID uint, approver model.Employee) (*model.Attendance, error) {
	if !approver.Role.CanApproveOvertime() {
		return nil, ErrUnauthorized
	}

	attendance, err := u.attendanceRepo.GetByID(recordID)
	if err != nil {
		return nil, err
	}

	if approver.Role == model.RoleSupervisor {
		employee, err := u.employeeRepo.FindByID(attendance.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee.Branch != approver.Branch {
			return nil, ErrUnauthorized
		}
	}

	if attendance.CheckOutTime == nil {
		return nil, ErrNotCheckedOut
	}

	checkOut := shift.AsLocal(*attendance.CheckOutTime, u.loc)
	attendance.OvertimeApproved = true
	attendance.OvertimeMinutes = shift.PotentialOvertime(checkOut, attendance.ShiftName, u.catalog, u.loc)

	if err := u.attendanceRepo.Update(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// CurrentStatus melaporkan posisi state machine hari ini.
func (u *AttendanceUsecase) CurrentStatus(employeeID uint) (string, *model.Attendance, error) {
	date := u.now().In(u.loc).Format("2006-01-02")

	attendance, err := u.attendanceRepo.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DayStateNone, nil, nil
		}
		return "", nil, err
	}

	if attendance.CheckOutTime != nil {
		return DayStateCheckedOut, attendance, nil
	}
	return DayStateCheckedIn, attendance, nil
}

// History mengembalikan record terdahulu, terbaru dulu.
func (u *AttendanceUsecase) History(employeeID uint, limit int) ([]model.Attendance, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.attendanceRepo.GetHistory(employeeID, limit)
}

// PotentialOvertime untuk tampilan, tidak tergantung approval.
func (u *AttendanceUsecase) PotentialOvertime(attendance *model.Attendance) int {
	if attendance.CheckOutTime == nil {
		return 0
	}
	checkOut := shift.AsLocal(*attendance.CheckOutTime, u.loc)
	return shift.PotentialOvertime(checkOut, attendance.ShiftName, u.catalog, u.loc)
}
