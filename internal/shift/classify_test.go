package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var jakarta = time.FixedZone("WIB", 7*3600)

const grace = 15 * time.Minute

func clockAt(hour, min, sec int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, sec, 0, jakarta)
}

func TestClassify(t *testing.T) {
	cat := Default()

	tests := []struct {
		name    string
		shift   string
		checkIn time.Time
		want    string
	}{
		{"pagi sebelum mulai", "Pagi", clockAt(9, 45, 0), StatusPresent},
		{"pagi dalam grace", "Pagi", clockAt(10, 14, 0), StatusPresent},
		{"pagi tepat di batas grace", "Pagi", clockAt(10, 15, 0), StatusPresent},
		{"pagi lewat grace", "Pagi", clockAt(10, 16, 0), StatusLate},
		{"siang lewat grace", "Siang", clockAt(12, 30, 0), StatusLate},
		{"sore dalam grace", "Sore", clockAt(16, 10, 0), StatusPresent},
		{"shift tidak dikenal selalu hadir", "Malam", clockAt(23, 59, 0), StatusPresent},
		{"shift kosong selalu hadir", "", clockAt(13, 0, 0), StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.checkIn, tt.shift, cat, grace, jakarta)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Menaikkan waktu check-in tidak boleh mengubah TERLAMBAT kembali jadi HADIR.
func TestClassifyMonotonic(t *testing.T) {
	cat := Default()

	late := false
	for m := 0; m <= 120; m++ {
		got := Classify(clockAt(10, 0, 0).Add(time.Duration(m)*time.Minute), "Pagi", cat, grace, jakarta)
		if got == StatusLate {
			late = true
		}
		if late {
			assert.Equal(t, StatusLate, got, "menit ke-%d", m)
		}
	}
}

func TestPotentialOvertime(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		shift    string
		checkOut time.Time
		want     int
	}{
		{"pagi pulang cepat", "Pagi", clockAt(15, 59, 0), 0},
		{"pagi tepat ops pulang", "Pagi", clockAt(16, 0, 0), 0},
		{"pagi lembur 45 menit", "Pagi", clockAt(16, 45, 0), 45},
		{"detik dibulatkan ke bawah", "Pagi", clockAt(16, 45, 30), 45},
		{"siang lembur 65 menit", "Siang", clockAt(21, 5, 0), 65},
		{"shift tidak dikenal", "Malam", clockAt(23, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PotentialOvertime(tt.checkOut, tt.shift, cat, jakarta)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Setelah ops pulang, lembur naik tepat satu menit per menit.
func TestPotentialOvertimeIncreasing(t *testing.T) {
	cat := Default()

	for m := 1; m <= 180; m++ {
		checkOut := clockAt(16, 0, 0).Add(time.Duration(m) * time.Minute)
		assert.Equal(t, m, PotentialOvertime(checkOut, "Pagi", cat, jakarta))
	}
}

func TestFormatOvertime(t *testing.T) {
	assert.Equal(t, "", FormatOvertime(0))
	assert.Equal(t, "", FormatOvertime(-5))
	assert.Equal(t, "00:45", FormatOvertime(45))
	assert.Equal(t, "01:00", FormatOvertime(60))
	assert.Equal(t, "02:05", FormatOvertime(125))
}

func TestLookupUnknown(t *testing.T) {
	cat := Default()

	_, ok := cat.Lookup("Pagi")
	assert.True(t, ok)

	_, ok = cat.Lookup("TidakAda")
	assert.False(t, ok)
}
