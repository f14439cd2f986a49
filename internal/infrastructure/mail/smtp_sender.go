// Package mail implementa el transporte SMTP de las alertas de re-orden.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jcastellr/almacen-api/internal/application/notify"
	"github.com/jcastellr/almacen-api/pkg/config"
)

var _ notify.Sender = (*SMTPSender)(nil)

// SMTPSender entrega las alertas por SMTP usando gomail.
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPSender construye el remitente contra el servidor configurado.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Send arma y entrega el correo de alerta a todos los destinatarios.
func (s *SMTPSender) Send(msg notify.Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", msg.Recipients...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", renderBody(msg))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar alerta smtp: %w", err)
	}
	return nil
}

func renderBody(msg notify.Message) string {
	return fmt.Sprintf(`<html><body>
<p>El siguiente artículo alcanzó el umbral de re-orden:</p>
<table border="1" cellpadding="6" cellspacing="0">
	<tr><th>Código de barras</th><th>Especificación</th><th>Ubicación</th><th>Remanente</th></tr>
	<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>
</table>
<p>Por favor gestione la reposición.</p>
</body></html>`,
		msg.Barcode, msg.Specification, msg.Location, msg.Remaining)
}
