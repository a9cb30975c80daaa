package mail

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// VisitReminderMailer emails fired visit reminders to the user's address.
type VisitReminderMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	useTLS   bool
	send     sendFunc
}

func NewVisitReminderMailer(host, port, username, password, from string, useTLS bool) *VisitReminderMailer {
	return &VisitReminderMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		useTLS:   useTLS,
		send:     smtp.SendMail,
	}
}

// Notify sends n by email. Notifications without an address are skipped.
func (m *VisitReminderMailer) Notify(ctx context.Context, n domain.Notification) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}
	to := strings.TrimSpace(n.Email)
	if to == "" {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return m.send(addr, auth, m.from, []string{to}, m.message(to, n))
}

func (m *VisitReminderMailer) message(to string, n domain.Notification) []byte {
	body := fmt.Sprintf("%s\n\n%s\n", n.Body, n.Title)
	if n.Icon != "" {
		body += "\n" + n.Icon + "\n"
	}

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", n.Title)))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	message.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(message.String())
}
