package repository

import "errors"

// Error transisi yang harus bisa dibedakan oleh handler (dan oleh test).
var (
	ErrSudahDimulai = errors.New("item penugasan sudah dimulai")
	ErrBelumDimulai = errors.New("item penugasan belum dimulai")
	ErrSudahSelesai = errors.New("item penugasan sudah diselesaikan")
)
