package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sushihentaime/blognest/internal/common"
	"golang.org/x/exp/rand"
)

const maxRetries = 5

var baseDelay = 500 * time.Millisecond

// NewMailService builds the consumer that mails contact messages to recipient.
func NewMailService(mb common.MessageConsumer, host, username, password, sender, recipient string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:    logger,
		recipient: recipient,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// DeliverContactMessages consumes queued contact messages in the background until Close is called.
func (s *MailService) DeliverContactMessages() {
	msgs, err := s.mb.Consume(common.ContactSubmittedKey, common.ContactExchange, common.ContactSubmittedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				s.deliver(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping DeliverContactMessages due to context cancellation")
				return
			}
		}
	}()
}

// deliver sends one message using exponential backoff with jitter. The delivery is acked
// whether or not the mail went out so a poisoned message does not loop forever.
func (s *MailService) deliver(msg amqp.Delivery) {
	defer msg.Ack(false)

	var data ContactMessage
	if err := json.Unmarshal(msg.Body, &data); err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		return
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.m.send(s.recipient, data.Email, data, contactTemplate)
		if err == nil {
			s.logger.Info("contact message sent", slog.String("from", data.Email))
			return
		}

		delay := time.Duration(rand.Int63n(int64(baseDelay) << uint(attempt)))
		s.logger.Info("delaying contact message", slog.String("from", data.Email), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return
		}
	}

	s.logger.Error("could not send contact message", slog.String("from", data.Email))
}

func (s *MailService) Close() {
	s.cancel()
}
