// Package mail implementa el envío de correo transaccional vía SMTP.
package mail

import (
	"bytes"
	"fmt"
	"html/template"

	gopkgmail "gopkg.in/gomail.v2"

	"github.com/jhoicas/bakeapp-api/internal/application/auth"
	"github.com/jhoicas/bakeapp-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía el correo de bienvenida al registrarse.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #8b4513;">¡Bienvenido a BakeApp{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Tu cuenta fue creada correctamente. Ya puedes hacer tus pedidos de panadería
  y seguir su estado desde la aplicación.</p>
  <p style="color: #888; font-size: 12px;">Si no creaste esta cuenta, ignora este correo.</p>
</div>`))

// SendWelcome envía el correo de bienvenida. Bloquea hasta completar el envío;
// el caso de uso lo invoca en una goroutine para no retrasar el registro.
func (s *SMTPMailer) SendWelcome(to, name string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, struct{ Name string }{Name: name}); err != nil {
		return fmt.Errorf("render bienvenida: %w", err)
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Bienvenido a BakeApp")
	m.SetBody("text/html", body.String())

	d := gopkgmail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = s.cfg.Port == 465
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar bienvenida a %s: %w", to, err)
	}
	return nil
}
