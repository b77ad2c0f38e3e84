package mailservice

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sushihentaime/blognest/internal/common"
)

func NewContactService(mb common.MessageProducer) *ContactService {
	return &ContactService{mb: mb}
}

func validateContactMessage(v *common.Validator, msg *ContactMessage) {
	v.Check(msg.Name != "", "name", "must be provided")
	v.Check(utf8.RuneCountInString(msg.Name) <= 100, "name", "must not be more than 100 characters long")
	v.Check(msg.Email != "", "email", "must be provided")
	v.Check(common.EmailRX.MatchString(msg.Email), "email", "must be a valid email address")
	v.Check(msg.Message != "", "message", "must be provided")
	v.Check(utf8.RuneCountInString(msg.Message) <= 5000, "message", "must not be more than 5000 characters long")
}

// Submit queues a contact form message for delivery to the admin.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	msg := &ContactMessage{
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		Message:     strings.TrimSpace(message),
		SubmittedAt: time.Now().UTC(),
	}

	v := common.NewValidator()
	validateContactMessage(v, msg)
	if !v.Valid() {
		return v.ValidationError()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.mb.Publish(ctx, body, common.ContactSubmittedKey, common.ContactExchange)
}
