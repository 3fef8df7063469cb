package usecase

import "errors"

// Taksonomi error transisi. Handler yang memutuskan status HTTP-nya;
// tidak ada transisi yang di-retry otomatis.
var (
	ErrAlreadyCheckedIn  = errors.New("sudah melakukan check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("sudah melakukan check-out")
	ErrNoCheckInFound    = errors.New("belum ada check-in hari ini")
	ErrNotCheckedOut     = errors.New("record belum check-out")
	ErrUnauthorized      = errors.New("role atau cabang tidak berhak")
	ErrNotApproved       = errors.New("akun belum disetujui")
	ErrInvalidCheckOut   = errors.New("check-out harus setelah check-in")
	ErrInvalidInput      = errors.New("input tidak valid")
)
