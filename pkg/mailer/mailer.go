package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig carries the transport settings for one send. The values come
// from the email settings stored in the database, not from the environment.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	IgnoreTLS bool
	Sender    string
}

// Message is a single outgoing mail.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends mail over a transport.
type Mailer interface {
	Send(cfg SMTPConfig, msg Message) error
}

// smtpMailer implements Mailer over net/smtp
type smtpMailer struct{}

// NewSMTPMailer creates the production SMTP transport.
func NewSMTPMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) Send(cfg SMTPConfig, msg Message) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	payload := []byte(buildMessage(cfg.Sender, msg))

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if !cfg.IgnoreTLS {
		return smtp.SendMail(addr, auth, cfg.Sender, []string{msg.To}, payload)
	}

	// Servers with self-signed certificates: same handshake as SendMail
	// but with certificate verification disabled.
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: cfg.Host, InsecureSkipVerify: true}
		if err := client.StartTLS(tlsCfg); err != nil {
			return err
		}
	}
	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	if err := client.Mail(cfg.Sender); err != nil {
		return err
	}
	if err := client.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// buildMessage assembles the RFC 5322 header block and body.
func buildMessage(sender string, msg Message) string {
	var sb strings.Builder
	sb.WriteString("From: " + sender + "\r\n")
	sb.WriteString("To: " + msg.To + "\r\n")
	if msg.ReplyTo != "" {
		sb.WriteString("Reply-To: " + msg.ReplyTo + "\r\n")
	}
	sb.WriteString("Subject: " + msg.Subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.Body)
	return sb.String()
}
