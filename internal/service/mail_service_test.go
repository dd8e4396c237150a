package service

import (
	"net/smtp"
	"sync"
	"testing"

	"go-library-management/config"
	"go-library-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mailRecorder struct {
	mu    sync.Mutex
	sent  []Mail
	addrs []string
}

func (r *mailRecorder) sendFunc() SendFunc {
	return func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.sent = append(r.sent, Mail{From: from, To: to, Body: string(msg)})
		r.addrs = append(r.addrs, addr)
		return nil
	}
}

func (r *mailRecorder) all() []Mail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Mail(nil), r.sent...)
}

func testMailService(recorder *mailRecorder) *MailService {
	cfg := config.MailConfig{
		Host: "localhost",
		Port: "1025",
		From: "operator@library.test",
	}
	log := logrus.New()
	return newMailService(cfg, log, recorder.sendFunc())
}

func TestMailServiceDeliversQueuedMail(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)

	svc.Enqueue(Mail{
		Subject: "hello",
		Body:    "world",
		From:    "a@example.com",
		To:      []string{"b@example.com"},
	})
	svc.Stop()

	sent := recorder.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@example.com", sent[0].From)
	assert.Equal(t, []string{"b@example.com"}, sent[0].To)
	assert.Equal(t, "localhost:1025", recorder.addrs[0])
}

func TestMailServiceStopDrainsQueue(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)

	for i := 0; i < 10; i++ {
		svc.Enqueue(Mail{Subject: "n", To: []string{"x@example.com"}})
	}
	svc.Stop()

	assert.Len(t, recorder.all(), 10)
}

func TestMailServiceDropsAfterStop(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)
	svc.Stop()

	svc.Enqueue(Mail{Subject: "late", To: []string{"x@example.com"}})

	assert.Empty(t, recorder.all())
}

func TestSendLoanRequestedMailGoesToOperator(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)

	book := &entity.Book{Name: "The Go Programming Language"}
	user := &entity.User{Username: "alice", Email: "alice@example.com"}
	svc.SendLoanRequestedMail(book, user)
	svc.Stop()

	sent := recorder.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "operator@library.test", sent[0].From)
	assert.Equal(t, []string{"operator@library.test"}, sent[0].To)
	assert.Contains(t, sent[0].Body, "alice")
	assert.Contains(t, sent[0].Body, "The Go Programming Language")
}

func TestSendTicketMailUsesRequesterAsSender(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)

	ticket := &entity.Ticket{RequestMessage: "Please add Clean Code"}
	user := &entity.User{Username: "bob", Email: "bob@example.com"}
	svc.SendTicketMail(ticket, user)
	svc.Stop()

	sent := recorder.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "bob@example.com", sent[0].From)
	assert.Equal(t, []string{"operator@library.test"}, sent[0].To)
	assert.Contains(t, sent[0].Body, "Please add Clean Code")
}

func TestSendTicketResolvedMailGoesToOwner(t *testing.T) {
	recorder := &mailRecorder{}
	svc := testMailService(recorder)

	response := "Ordered two copies"
	ticket := &entity.Ticket{
		RequestMessage:  "Please add Clean Code",
		ResponseMessage: &response,
		Status:          entity.TicketStatusAccepted,
		User:            entity.User{Email: "bob@example.com"},
	}
	svc.SendTicketResolvedMail(ticket)
	svc.Stop()

	sent := recorder.all()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"bob@example.com"}, sent[0].To)
	assert.Contains(t, sent[0].Body, "accepted")
	assert.Contains(t, sent[0].Body, "Ordered two copies")
}

func TestBuildMessageFormatsHeaders(t *testing.T) {
	msg := string(buildMessage(Mail{
		Subject: "Test",
		Body:    "body text",
		From:    "a@example.com",
		To:      []string{"b@example.com", "c@example.com"},
	}))

	assert.Contains(t, msg, "From: a@example.com\r\n")
	assert.Contains(t, msg, "To: b@example.com, c@example.com\r\n")
	assert.Contains(t, msg, "Subject: Test\r\n\r\nbody text")
}
