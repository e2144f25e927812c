package notify

import (
	"fmt"

	"logbook-lapangan-backend/config"

	"gopkg.in/gomail.v2"
)

// Notifier mengirim pemberitahuan ke petugas. Pengiriman bersifat
// best-effort: kegagalan kirim tidak membatalkan operasi pemanggil.
type Notifier interface {
	KirimPenugasanBaru(email, nama, tanggal string, jumlah int) error
}

type mailNotifier struct {
	dialer *gomail.Dialer
	dari   string
}

func NewMailNotifier() Notifier {
	host := config.GetEnv("SMTP_HOST", "localhost")
	port := config.GetEnvAsInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	pass := config.GetEnv("SMTP_PASSWORD", "")
	return &mailNotifier{
		dialer: gomail.NewDialer(host, port, user, pass),
		dari:   config.GetEnv("SMTP_FROM", "no-reply@logbook-lapangan.local"),
	}
}

func (n *mailNotifier) KirimPenugasanBaru(email, nama, tanggal string, jumlah int) error {
	if email == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.dari)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Penugasan Baru Tanggal %s", tanggal))
	m.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nAnda menerima %d penugasan baru untuk tanggal %s. Silakan buka aplikasi untuk detailnya.",
		nama, jumlah, tanggal,
	))

	return n.dialer.DialAndSend(m)
}
