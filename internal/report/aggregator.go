package report

import (
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/shift"
)

// Kode sel laporan. H/T dari status absensi, sisanya dari schedule entry.
const (
	CodePresent = "H"
	CodeLate    = "T"
	CodeSick    = "Skt"
	CodePermit  = "Izn"
	CodeOff     = "Lbr"
)

// Layout spreadsheet fixed-width: selalu 31 kolom hari walau bulannya
// lebih pendek. Over-allocation ini disengaja, bukan bug.
const DayColumns = 31

// DailyRow adalah satu baris Report A (grid kehadiran harian).
type DailyRow struct {
	No        int                `json:"no"`
	Name      string             `json:"name"`
	Days      [DayColumns]string `json:"days"`
	TotalDays int                `json:"total_days"`
}

// ShiftRow adalah satu baris Report B (grid kode shift + rekonsiliasi libur).
type ShiftRow struct {
	No           int                `json:"no"`
	Name         string             `json:"name"`
	Alpa         int                `json:"alpa"`
	Sick         int                `json:"sick"`
	Permit       int                `json:"permit"`
	ShiftPresent int                `json:"shift_present"`
	Days         [DayColumns]string `json:"days"`
}

// OvertimeRow adalah satu baris Report C (daftar lembur potensial).
type OvertimeRow struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Shift      string `json:"shift"`
	CheckIn    string `json:"check_in"`
	Start      string `json:"start"`
	Departure  string `json:"departure"`
	CheckOut   string `json:"check_out"`
	Overtime   string `json:"overtime"` // "HH:MM", kosong bila <= 0
}

type Tables struct {
	Daily    []DailyRow    `json:"daily"`
	Shift    []ShiftRow    `json:"shift"`
	Overtime []OvertimeRow `json:"overtime"`
}

// Aggregator membaca ledger + schedule board satu bulan dan menghasilkan
// tiga tabel. Read-only; boleh jalan bersamaan dengan tulisan ledger
// (konsistensi per baris cukup).
type Aggregator struct {
	Catalog  shift.Catalog
	Location *time.Location
}

func NewAggregator(catalog shift.Catalog, loc *time.Location) Aggregator {
	return Aggregator{Catalog: catalog, Location: loc}
}

// Build menghasilkan ketiga tabel untuk bulan target. Prioritas Report B:
// absensi mengalahkan schedule entry, entry spesifik mengalahkan global,
// dan di antara entry yang level-nya sama, ID terkecil yang menang.
func (g Aggregator) Build(employees []model.Employee, attendances []model.Attendance, entries []model.ScheduleEntry, year int, month time.Month) Tables {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, g.Location).Day()

	// Map[EmployeeID][hari] = record. Unique index menjamin satu per hari.
	attMap := make(map[uint]map[int]model.Attendance)
	for _, a := range attendances {
		day := dayOf(a.Date)
		if day == 0 {
			continue
		}
		if _, ok := attMap[a.EmployeeID]; !ok {
			attMap[a.EmployeeID] = make(map[int]model.Attendance)
		}
		attMap[a.EmployeeID][day] = a
	}

	// Schedule entries dipisah spesifik vs global; ID terkecil menang.
	specific := make(map[uint]map[int]model.ScheduleEntry)
	global := make(map[int]model.ScheduleEntry)
	for _, e := range entries {
		day := dayOf(e.Date)
		if day == 0 {
			continue
		}
		if e.EmployeeID == nil {
			if prev, ok := global[day]; !ok || e.ID < prev.ID {
				global[day] = e
			}
			continue
		}
		if _, ok := specific[*e.EmployeeID]; !ok {
			specific[*e.EmployeeID] = make(map[int]model.ScheduleEntry)
		}
		if prev, ok := specific[*e.EmployeeID][day]; !ok || e.ID < prev.ID {
			specific[*e.EmployeeID][day] = e
		}
	}

	tables := Tables{
		Daily:    []DailyRow{},
		Shift:    []ShiftRow{},
		Overtime: []OvertimeRow{},
	}

	no := 0
	for _, employee := range employees {
		if !employee.Role.RequiresAttendance() {
			continue
		}
		no++

		dailyRow := DailyRow{No: no, Name: employee.FullName}
		shiftRow := ShiftRow{No: no, Name: employee.FullName}
		off := 0

		for d := 1; d <= daysInMonth; d++ {
			if a, ok := attMap[employee.ID][d]; ok {
				// Report A: H/T dari status yang dihitung saat check-in
				if a.Status == shift.StatusLate {
					dailyRow.Days[d-1] = CodeLate
				} else {
					dailyRow.Days[d-1] = CodePresent
				}
				dailyRow.TotalDays++

				// Report B: ada record -> kode shift per tier role,
				// schedule entry di hari yang sama diabaikan
				shiftRow.ShiftPresent++
				if rule, known := g.Catalog.Lookup(a.ShiftName); known {
					if employee.Role.SupervisorTier() {
						shiftRow.Days[d-1] = rule.SupervisorCode
					} else {
						shiftRow.Days[d-1] = rule.StaffCode
					}
				}
				continue
			}

			entry, ok := specific[employee.ID][d]
			if !ok {
				entry, ok = global[d]
			}
			if !ok {
				continue // implicit Alpa
			}

			switch entry.Status {
			case model.ScheduleSick:
				shiftRow.Days[d-1] = CodeSick
				shiftRow.Sick++
			case model.SchedulePermit, model.ScheduleLeave:
				shiftRow.Days[d-1] = CodePermit
				shiftRow.Permit++
			case model.ScheduleOff:
				shiftRow.Days[d-1] = CodeOff
				off++
			}
		}

		shiftRow.Alpa = daysInMonth - shiftRow.ShiftPresent - shiftRow.Sick - shiftRow.Permit - off
		if shiftRow.Alpa < 0 {
			shiftRow.Alpa = 0
		}

		tables.Daily = append(tables.Daily, dailyRow)
		tables.Shift = append(tables.Shift, shiftRow)
	}

	// Report C: lembur potensial untuk setiap record ber-checkout dengan
	// shift yang dikenal, tanpa melihat status approval.
	for _, a := range attendances {
		if a.CheckOutTime == nil {
			continue
		}
		rule, known := g.Catalog.Lookup(a.ShiftName)
		if !known {
			continue
		}

		checkOut := shift.AsLocal(*a.CheckOutTime, g.Location)
		minutes := shift.PotentialOvertime(checkOut, a.ShiftName, g.Catalog, g.Location)

		row := OvertimeRow{
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			Shift:      a.ShiftName,
			Start:      rule.Start,
			Departure:  rule.Departure,
			CheckOut:   checkOut.Format("15:04:05"),
			Overtime:   shift.FormatOvertime(minutes),
		}
		if a.CheckInTime != nil {
			row.CheckIn = shift.AsLocal(*a.CheckInTime, g.Location).Format("15:04:05")
		}
		tables.Overtime = append(tables.Overtime, row)
	}

	return tables
}

func dayOf(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Day()
}
