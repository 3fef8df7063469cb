package shift

// Rule memuat jam-jam penting satu shift plus kode sel laporan.
// Semua jam dalam format "15:04" di zona waktu organisasi.
type Rule struct {
	Start     string // jam masuk
	End       string // jam pulang terjadwal
	Departure string // ops pulang, patokan hitung lembur

	StaffCode      string // kode Report B untuk STAFF
	SupervisorCode string // kode Report B untuk SPV/MANAGER
}

// Catalog bersifat read-only setelah dibuat; di-inject lewat config,
// tidak ada state global.
type Catalog map[string]Rule

// Default mengembalikan tiga shift klinik: Pagi, Siang, Sore.
// Identik untuk semua cabang.
func Default() Catalog {
	return Catalog{
		"Pagi":  {Start: "10:00", End: "16:00", Departure: "16:00", StaffCode: "P", SupervisorCode: "1"},
		"Siang": {Start: "12:00", End: "20:00", Departure: "20:00", StaffCode: "S", SupervisorCode: "2"},
		"Sore":  {Start: "16:00", End: "22:00", Departure: "22:00", StaffCode: "M", SupervisorCode: "2"},
	}
}

// Lookup untuk shift yang tidak dikenal mengembalikan ok=false, bukan
// error: artinya "tidak ada aturan terlambat/lembur yang berlaku".
func (c Catalog) Lookup(name string) (Rule, bool) {
	rule, ok := c[name]
	return rule, ok
}
