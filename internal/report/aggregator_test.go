package report

import (
	"testing"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func newTestAggregator() Aggregator {
	return NewAggregator(shift.Default(), jakarta)
}

func emp(id uint, name string, role model.Role, branch string) model.Employee {
	return model.Employee{Model: gorm.Model{ID: id}, FullName: name, Role: role, Branch: branch}
}

func att(employeeID uint, date string, shiftName string, status string) model.Attendance {
	day, _ := time.ParseInLocation("2006-01-02", date, jakarta)
	checkIn := day.Add(10 * time.Hour)
	return model.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		ShiftName:   shiftName,
		Status:      status,
		CheckInTime: &checkIn,
	}
}

func withCheckOut(a model.Attendance, hour, min int) model.Attendance {
	day, _ := time.ParseInLocation("2006-01-02", a.Date, jakarta)
	checkOut := day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	a.CheckOutTime = &checkOut
	return a
}

func entry(id uint, employeeID *uint, date string, status string) model.ScheduleEntry {
	return model.ScheduleEntry{Model: gorm.Model{ID: id}, EmployeeID: employeeID, Date: date, Status: status}
}

func uintPtr(v uint) *uint { return &v }

func TestDailyGrid(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff}, []model.Attendance{
		att(1, "2026-03-05", "Pagi", shift.StatusPresent),
		att(1, "2026-03-06", "Pagi", shift.StatusLate),
	}, nil, 2026, time.March)

	require.Len(t, tables.Daily, 1)
	row := tables.Daily[0]
	assert.Equal(t, "H", row.Days[4])
	assert.Equal(t, "T", row.Days[5])
	assert.Equal(t, "", row.Days[0])
	assert.Equal(t, 2, row.TotalDays)
	// Kolom hari selalu 31 walau bulannya lebih pendek
	assert.Len(t, row.Days, 31)
}

func TestShiftCodesPerRoleTier(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")
	spv := emp(2, "SPV Jakbar", model.RoleSupervisor, "Jakbar")

	tables := g.Build([]model.Employee{staff, spv}, []model.Attendance{
		att(1, "2026-03-03", "Pagi", shift.StatusPresent),
		att(1, "2026-03-04", "Sore", shift.StatusPresent),
		att(2, "2026-03-03", "Pagi", shift.StatusPresent),
		att(2, "2026-03-04", "Siang", shift.StatusPresent),
	}, nil, 2026, time.March)

	require.Len(t, tables.Shift, 2)
	assert.Equal(t, "P", tables.Shift[0].Days[2])
	assert.Equal(t, "M", tables.Shift[0].Days[3])
	assert.Equal(t, "1", tables.Shift[1].Days[2])
	assert.Equal(t, "2", tables.Shift[1].Days[3])
	assert.Equal(t, 2, tables.Shift[0].ShiftPresent)
}

// Hari yang punya record absensi DAN schedule entry selalu menampilkan
// kode shift, bukan kode jadwal.
func TestAttendanceBeatsSchedule(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff},
		[]model.Attendance{att(1, "2026-03-05", "Pagi", shift.StatusPresent)},
		[]model.ScheduleEntry{entry(1, uintPtr(1), "2026-03-05", model.ScheduleSick)},
		2026, time.March)

	row := tables.Shift[0]
	assert.Equal(t, "P", row.Days[4])
	assert.Equal(t, 0, row.Sick)
	assert.Equal(t, 1, row.ShiftPresent)
}

func TestGlobalOffDay(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff}, nil,
		[]model.ScheduleEntry{entry(1, nil, "2026-03-12", model.ScheduleOff)},
		2026, time.March)

	shiftRow := tables.Shift[0]
	assert.Equal(t, "Lbr", shiftRow.Days[11])
	assert.Equal(t, 0, shiftRow.Sick)
	assert.Equal(t, 0, shiftRow.Permit)

	// Report A tidak menghitung hari libur
	dailyRow := tables.Daily[0]
	assert.Equal(t, "", dailyRow.Days[11])
	assert.Equal(t, 0, dailyRow.TotalDays)
}

func TestSpecificEntryBeatsGlobal(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff}, nil,
		[]model.ScheduleEntry{
			entry(1, nil, "2026-03-12", model.ScheduleOff),
			entry(2, uintPtr(1), "2026-03-12", model.ScheduleSick),
		}, 2026, time.March)

	row := tables.Shift[0]
	assert.Equal(t, "Skt", row.Days[11])
	assert.Equal(t, 1, row.Sick)
}

// Di level scope yang sama, entry dengan ID terkecil yang menang.
func TestSameScopeTieBreak(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff}, nil,
		[]model.ScheduleEntry{
			entry(10, uintPtr(1), "2026-03-03", model.SchedulePermit),
			entry(4, uintPtr(1), "2026-03-03", model.ScheduleSick),
		}, 2026, time.March)

	row := tables.Shift[0]
	assert.Equal(t, "Skt", row.Days[2])
	assert.Equal(t, 1, row.Sick)
	assert.Equal(t, 0, row.Permit)
}

func TestAlpaDerivation(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	// Februari 2026 = 28 hari: 2 hadir + 1 sakit + 1 izin + 1 libur
	tables := g.Build([]model.Employee{staff},
		[]model.Attendance{
			att(1, "2026-02-02", "Pagi", shift.StatusPresent),
			att(1, "2026-02-03", "Pagi", shift.StatusLate),
		},
		[]model.ScheduleEntry{
			entry(1, uintPtr(1), "2026-02-04", model.ScheduleSick),
			entry(2, uintPtr(1), "2026-02-05", model.ScheduleLeave),
			entry(3, nil, "2026-02-08", model.ScheduleOff),
		}, 2026, time.February)

	row := tables.Shift[0]
	assert.Equal(t, 2, row.ShiftPresent)
	assert.Equal(t, 1, row.Sick)
	assert.Equal(t, 1, row.Permit)
	assert.Equal(t, 28-5, row.Alpa)
}

func TestOwnerExcludedFromRoster(t *testing.T) {
	g := newTestAggregator()
	owner := emp(1, "Big Boss", model.RoleOwner, "Pusat")
	staff := emp(2, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{owner, staff}, nil, nil, 2026, time.March)

	require.Len(t, tables.Daily, 1)
	assert.Equal(t, "Maryam", tables.Daily[0].Name)
	assert.Equal(t, 1, tables.Daily[0].No)
}

func TestOvertimeReport(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	withOT := withCheckOut(att(1, "2026-03-05", "Pagi", shift.StatusPresent), 16, 45)
	noOT := withCheckOut(att(1, "2026-03-06", "Pagi", shift.StatusPresent), 15, 59)
	stillIn := att(1, "2026-03-07", "Pagi", shift.StatusPresent)
	unknown := withCheckOut(att(1, "2026-03-08", "Malam", shift.StatusPresent), 23, 0)

	tables := g.Build([]model.Employee{staff},
		[]model.Attendance{withOT, noOT, stillIn, unknown}, nil, 2026, time.March)

	// Belum checkout dan shift tidak dikenal tidak menghasilkan baris
	require.Len(t, tables.Overtime, 2)

	first := tables.Overtime[0]
	assert.Equal(t, "2026-03-05", first.Date)
	assert.Equal(t, "00:45", first.Overtime)
	assert.Equal(t, "10:00", first.Start)
	assert.Equal(t, "16:00", first.Departure)
	assert.Equal(t, "16:45:00", first.CheckOut)

	// Lembur nol tetap tampil sebagai baris, kolom lemburnya kosong
	assert.Equal(t, "", tables.Overtime[1].Overtime)
}

// Entry dengan tanggal yang tidak bisa di-parse tidak menyumbang kode
// maupun counter apa pun.
func TestMalformedDateIgnored(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff}, nil,
		[]model.ScheduleEntry{entry(1, uintPtr(1), "26/03/2026", model.ScheduleSick)},
		2026, time.March)

	row := tables.Shift[0]
	assert.Equal(t, 0, row.Sick)
	for _, code := range row.Days {
		assert.Equal(t, "", code)
	}
}

// Shift tidak dikenal tetap dihitung hadir, hanya kodenya kosong.
func TestUnknownShiftStillCounts(t *testing.T) {
	g := newTestAggregator()
	staff := emp(1, "Maryam", model.RoleStaff, "Jakbar")

	tables := g.Build([]model.Employee{staff},
		[]model.Attendance{att(1, "2026-03-05", "Malam", shift.StatusPresent)}, nil, 2026, time.March)

	assert.Equal(t, "", tables.Shift[0].Days[4])
	assert.Equal(t, 1, tables.Shift[0].ShiftPresent)
	assert.Equal(t, "H", tables.Daily[0].Days[4])
}
