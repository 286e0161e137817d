package mail

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. Sends are synchronous; callers that
// do not want to block (OTP delivery) run them on their own goroutine and
// record the outcome.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Settings are the effective SMTP parameters for one send. They come from
// system settings when configured there, falling back to static config.
type Settings struct {
	Provider string
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// resolve fills host and port from the provider preset when they are not
// set explicitly.
func (s Settings) resolve() Settings {
	if s.Host != "" {
		return s
	}
	switch s.Provider {
	case "gmail":
		s.Host, s.Port = "smtp.gmail.com", 587
	case "sendgrid":
		s.Host, s.Port = "smtp.sendgrid.net", 587
		if s.Username == "" {
			s.Username = "apikey"
		}
	case "resend":
		s.Host, s.Port = "smtp.resend.com", 587
		if s.Username == "" {
			s.Username = "resend"
		}
	}
	if s.Port == 0 {
		s.Port = 587
	}
	return s
}

// SMTPSender sends mail through gomail. The settings provider is consulted
// per send so admin changes to the email settings take effect immediately.
type SMTPSender struct {
	settings func() Settings
	logger   *zap.Logger
}

func NewSMTPSender(settings func() Settings, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{settings: settings, logger: logger.Named("mail")}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	cfg := s.settings().resolve()
	if cfg.Host == "" || cfg.From == "" {
		return fmt.Errorf("mail is not configured (host=%q from=%q)", cfg.Host, cfg.From)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Warn("mail send failed",
			zap.String("to", to),
			zap.String("host", cfg.Host),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// LogSender is the fallback when mail is disabled. It logs the message so
// local development can read the OTP from the server output.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail")}
}

func (s *LogSender) Send(to, subject, htmlBody string) error {
	s.logger.Info("mail delivery disabled, logging instead",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", htmlBody),
	)
	return nil
}

// OTPBody renders the verification code email.
func OTPBody(code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf(`<div style="font-family:sans-serif">
<h2>Your verification code</h2>
<p style="font-size:28px;letter-spacing:6px;font-weight:bold">%s</p>
<p>The code expires in %d minute(s). If you did not request it, ignore this email.</p>
</div>`, code, minutes)
}
