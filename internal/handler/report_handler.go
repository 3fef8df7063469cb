package handler

import (
	"fmt"
	"strconv"
	"time"

	"attendance-backend/internal/access"
	"attendance-backend/internal/report"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	scheduleRepo   repository.ScheduleRepository
	aggregator     report.Aggregator
}

func NewReportHandler(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository, scheduleRepo repository.ScheduleRepository, aggregator report.Aggregator) *ReportHandler {
	return &ReportHandler{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		aggregator:     aggregator,
	}
}

// GetMonthly mengembalikan ketiga tabel sebagai JSON.
func (h *ReportHandler) GetMonthly(c *fiber.Ctx) error {
	tables, _, _, ok := h.build(c)
	if !ok {
		return nil
	}
	return c.JSON(tables)
}

// Export merender ketiga tabel ke satu workbook xlsx, satu sheet per
// laporan, dengan kolom hari 1..31 tetap.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	tables, month, year, ok := h.build(c)
	if !ok {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	writeDailySheet(f, tables.Daily)
	writeShiftSheet(f, tables.Shift)
	writeOvertimeSheet(f, tables.Overtime)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file excel"})
	}

	filename := fmt.Sprintf("Laporan_Absensi_%04d%02d.xlsx", year, month)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// build mengumpulkan input laporan sesuai scope viewer. Laporan tidak
// pernah memuat data yang tidak terlihat viewer di layar monitoring.
// Bila gagal, response error sudah ditulis dan ok=false.
func (h *ReportHandler) build(c *fiber.Ctx) (tables report.Tables, month time.Month, year int, ok bool) {
	viewer, err := h.employeeRepo.FindByID(viewerID(c))
	if err != nil {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Viewer tidak ditemukan"})
		return
	}

	monthParam := c.Query("month")
	yearParam := c.Query("year")
	if len(monthParam) == 1 {
		monthParam = "0" + monthParam
	}
	monthNum, errM := strconv.Atoi(monthParam)
	yearNum, errY := strconv.Atoi(yearParam)
	if errM != nil || errY != nil || monthNum < 1 || monthNum > 12 {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter month dan year tidak valid"})
		return
	}

	scope := access.ScopeFor(*viewer)

	roster, err := h.employeeRepo.GetRoster(scope)
	if err != nil {
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
		return
	}
	attendances, err := h.attendanceRepo.GetByMonth(monthParam, yearParam, scope)
	if err != nil {
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
		return
	}
	entries, err := h.scheduleRepo.GetByMonth(monthParam, yearParam, scope)
	if err != nil {
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
		return
	}

	tables = h.aggregator.Build(roster, attendances, entries, yearNum, time.Month(monthNum))
	return tables, time.Month(monthNum), yearNum, true
}

func writeDailySheet(f *excelize.File, rows []report.DailyRow) {
	sheet := "Absensi Harian"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"NO", "NAMA KARYAWAN", "Total Hari"}
	for d := 1; d <= report.DayColumns; d++ {
		headers = append(headers, strconv.Itoa(d))
	}
	writeRow(f, sheet, 1, headers)

	for i, row := range rows {
		values := []interface{}{row.No, row.Name, row.TotalDays}
		for _, code := range row.Days {
			values = append(values, code)
		}
		writeRow(f, sheet, i+2, values)
	}
}

func writeShiftSheet(f *excelize.File, rows []report.ShiftRow) {
	sheet := "Absensi Shift"
	f.NewSheet(sheet)

	headers := []interface{}{"NO", "NAMA", "Alpa", "Sakit", "Izin", "Shift Hadir"}
	for d := 1; d <= report.DayColumns; d++ {
		headers = append(headers, strconv.Itoa(d))
	}
	writeRow(f, sheet, 1, headers)

	for i, row := range rows {
		values := []interface{}{row.No, row.Name, row.Alpa, row.Sick, row.Permit, row.ShiftPresent}
		for _, code := range row.Days {
			values = append(values, code)
		}
		writeRow(f, sheet, i+2, values)
	}
}

func writeOvertimeSheet(f *excelize.File, rows []report.OvertimeRow) {
	sheet := "Lembur"
	f.NewSheet(sheet)

	writeRow(f, sheet, 1, []interface{}{"ID", "TANGGAL", "TIPE SHIFT", "TIMESTAMP_IN", "OPS_MULAI", "OPS_PULANG", "TIMESTAMP_OUT", "WAKTU_LEMBUR"})

	for i, row := range rows {
		writeRow(f, sheet, i+2, []interface{}{
			row.EmployeeID, row.Date, row.Shift, row.CheckIn,
			row.Start, row.Departure, row.CheckOut, row.Overtime,
		})
	}
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) {
	for col, value := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
		f.SetCellValue(sheet, cell, value)
	}
}
