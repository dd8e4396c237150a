package service

import (
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"sync/atomic"

	"go-library-management/config"
	"go-library-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const mailQueueSize = 64

// SendFunc performs the wire-level mail send. Production uses smtp.SendMail;
// tests inject a recorder.
type SendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Mail is one queued notification.
type Mail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// MailService delivers notification mail asynchronously. Callers enqueue and
// move on; delivery is best-effort and failures never reach the caller.
//
// Lifecycle mirrors the other background services: a single dispatch
// goroutine, stopChan to signal shutdown, WaitGroup to wait for it.
type MailService struct {
	cfg  config.MailConfig
	log  *logrus.Logger
	send SendFunc

	queue    chan Mail
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewMailService creates a MailService and starts its dispatch goroutine.
// Call Stop() during graceful shutdown.
func NewMailService(cfg config.MailConfig, log *logrus.Logger) *MailService {
	return newMailService(cfg, log, smtp.SendMail)
}

func newMailService(cfg config.MailConfig, log *logrus.Logger, send SendFunc) *MailService {
	svc := &MailService{
		cfg:      cfg,
		log:      log,
		send:     send,
		queue:    make(chan Mail, mailQueueSize),
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.dispatchLoop()

	return svc
}

// Enqueue queues a mail for delivery. It never blocks the caller: when the
// queue is full the mail is dropped with a warning.
func (s *MailService) Enqueue(mail Mail) {
	if s.stopped.Load() {
		s.log.Warnf("Mail service stopped, dropping mail %q to %v", mail.Subject, mail.To)
		return
	}

	select {
	case s.queue <- mail:
	default:
		s.log.Warnf("Mail queue full, dropping mail %q to %v", mail.Subject, mail.To)
	}
}

// Stop drains queued mail and stops the dispatch goroutine. Safe to call
// multiple times.
func (s *MailService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("MailService stopped")
	}
}

func (s *MailService) dispatchLoop() {
	defer s.wg.Done()

	for {
		select {
		case mail := <-s.queue:
			s.deliver(mail)
		case <-s.stopChan:
			// Drain what was queued before shutdown started.
			for {
				select {
				case mail := <-s.queue:
					s.deliver(mail)
				default:
					return
				}
			}
		}
	}
}

func (s *MailService) deliver(mail Mail) {
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := s.send(addr, auth, mail.From, mail.To, buildMessage(mail)); err != nil {
		s.log.Warnf("Failed to send mail %q to %v: %+v", mail.Subject, mail.To, err)
	}
}

func buildMessage(mail Mail) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", mail.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(mail.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n\r\n", mail.Subject)
	b.WriteString(mail.Body)
	return []byte(b.String())
}

// SendLoanRequestedMail notifies the operator that a user wants a book.
func (s *MailService) SendLoanRequestedMail(book *entity.Book, user *entity.User) {
	s.Enqueue(Mail{
		Subject: "New Book Loan Request",
		Body: fmt.Sprintf("%s has requested %q.\nPlease review the request in the dashboard.",
			user.Username, book.Name),
		From: s.cfg.From,
		To:   []string{s.cfg.From},
	})
}

// SendTicketMail forwards a user's book-addition request to the operator.
func (s *MailService) SendTicketMail(ticket *entity.Ticket, user *entity.User) {
	s.Enqueue(Mail{
		Subject: "Request to Add New Book to Library Collection",
		Body:    fmt.Sprintf("I hope this message finds you well.\n%s", ticket.RequestMessage),
		From:    user.Email,
		To:      []string{s.cfg.From},
	})
}

// SendTicketResolvedMail tells the ticket owner how the librarian responded.
// The ticket must have its User loaded.
func (s *MailService) SendTicketResolvedMail(ticket *entity.Ticket) {
	responseMessage := ""
	if ticket.ResponseMessage != nil {
		responseMessage = *ticket.ResponseMessage
	}

	s.Enqueue(Mail{
		Subject: fmt.Sprintf("Request %s", ticket.Status),
		Body: fmt.Sprintf("I hope this message finds you well.\nYour request %q has been %s.\n%s",
			ticket.RequestMessage, ticket.Status, responseMessage),
		From: s.cfg.From,
		To:   []string{ticket.User.Email},
	})
}

// SendOTPMail delivers a password-reset code.
func (s *MailService) SendOTPMail(email, otp string) {
	s.Enqueue(Mail{
		Subject: "Update password",
		Body: fmt.Sprintf("You have requested to update your password.\nYour OTP is %s. Don't share it with anyone.",
			otp),
		From: s.cfg.From,
		To:   []string{email},
	})
}

// SendPasswordChangedMail confirms a completed password reset.
func (s *MailService) SendPasswordChangedMail(user *entity.User) {
	s.Enqueue(Mail{
		Subject: "Password updated",
		Body: fmt.Sprintf("The password for %s has been updated.\nIf this wasn't you, contact the library staff immediately.",
			user.Username),
		From: s.cfg.From,
		To:   []string{user.Email},
	})
}
