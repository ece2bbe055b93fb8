package mail

import (
	"fmt"
	"net/smtp"
)

// Mailer is the delivery collaborator. The verification flow only needs a
// synchronous success/failure signal.
type Mailer interface {
	Send(to, subject, plain, html string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	From string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from}
}

func (m *SMTPMailer) Send(to, subject, plain, html string) error {
	body := html
	contentType := "text/html"
	if body == "" {
		body = plain
		contentType = "text/plain"
	}
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: %s; charset=UTF-8\r\n\r\n%s",
		m.From, to, subject, contentType, body,
	)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	return smtp.SendMail(addr, nil, m.From, []string{to}, []byte(msg))
}
