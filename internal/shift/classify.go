package shift

import (
	"fmt"
	"time"
)

const (
	StatusPresent = "HADIR"
	StatusLate    = "TERLAMBAT"
)

// Classify menentukan status check-in terhadap jam mulai shift plus
// grace period. Shift yang tidak dikenal selalu HADIR (tidak ada aturan).
// Fungsi murni: hasil sama untuk input dan konfigurasi yang sama.
func Classify(checkIn time.Time, shiftName string, cat Catalog, grace time.Duration, loc *time.Location) string {
	rule, ok := cat.Lookup(shiftName)
	if !ok {
		return StatusPresent
	}

	start := Combine(checkIn.In(loc), rule.Start, loc)
	if checkIn.After(start.Add(grace)) {
		return StatusLate
	}
	return StatusPresent
}

// PotentialOvertime menghitung menit kerja setelah jam ops pulang,
// dibulatkan ke bawah. Selalu bisa dihitung untuk tampilan, terlepas
// dari status approval.
func PotentialOvertime(checkOut time.Time, shiftName string, cat Catalog, loc *time.Location) int {
	rule, ok := cat.Lookup(shiftName)
	if !ok {
		return 0
	}

	departure := Combine(checkOut.In(loc), rule.Departure, loc)
	if !checkOut.After(departure) {
		return 0
	}
	return int(checkOut.Sub(departure).Minutes())
}

// FormatOvertime memformat menit lembur menjadi "HH:MM" zero-padded.
// Nol atau negatif menghasilkan string kosong.
func FormatOvertime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Combine menggabungkan tanggal kalender dari day dengan jam "15:04"
// di zona waktu loc.
func Combine(day time.Time, clock string, loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", clock)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// AsLocal menafsirkan ulang wall clock t di zona organisasi. Timestamp
// yang kehilangan info zona saat disimpan harus dibaca sebagai waktu
// lokal organisasi, tidak pernah UTC.
func AsLocal(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}
