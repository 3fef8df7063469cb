package mailer

import "gopkg.in/gomail.v2"

// Mailer mengirim notifikasi lewat SMTP. Host kosong berarti mailer
// dimatikan dan semua Send jadi no-op, supaya development lokal tidak
// butuh server mail.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// SendApprovalNotice memberi tahu pegawai bahwa akunnya sudah disetujui
// dan bisa dipakai untuk absen.
func (m *Mailer) SendApprovalNotice(to, fullName string) error {
	if m == nil || m.host == "" || to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Akun Absensi Disetujui")
	msg.SetBody("text/plain", "Halo "+fullName+",\n\nAkun absensi kamu sudah disetujui. Silakan login dan mulai melakukan check-in.\n")

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
