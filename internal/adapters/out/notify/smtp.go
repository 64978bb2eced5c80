package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

// SMTPNotifier emails order status updates to the order's contact address.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string

	// sendMail is swappable for tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates an email notifier.
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		sendMail: smtp.SendMail,
	}
}

// OrderStatusChanged emails the order contact about the new status.
func (n *SMTPNotifier) OrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	to := aggregate.ContactEmail()
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.from, to, subjectFor(aggregate), bodyFor(aggregate))

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	return n.sendMail(addr, auth, n.from, []string{to}, []byte(msg))
}
