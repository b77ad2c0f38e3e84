package mailservice

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendEmail(t *testing.T) {
	subject := bytes.NewBufferString("Test Subject")
	plainBody := bytes.NewBufferString("Test Plain Body")
	htmlBody := bytes.NewBufferString("Test HTML Body")

	testCases := []struct {
		name        string
		replyTo     string
		dialErr     error
		expectedErr error
	}{
		{name: "with reply-to", replyTo: "visitor@example.com"},
		{name: "without reply-to"},
		{name: "dial failure", dialErr: errors.New("connection refused"), expectedErr: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockParser := new(MockTemplate)
			mockDialer := new(MockDialer)

			mailer := Mail{
				dialer: mockDialer,
				parser: mockParser,
				sender: "sender@example.com",
			}

			mockParser.On("ParseTemplate", "template.html", mock.Anything).Return(subject, plainBody, htmlBody, nil)

			var sent []*mail.Message
			mockDialer.On("DialAndSend", mock.AnythingOfType("[]*mail.Message")).
				Run(func(args mock.Arguments) { sent = args.Get(0).([]*mail.Message) }).
				Return(tc.dialErr)

			err := mailer.send("admin@example.com", tc.replyTo, nil, "template.html")
			assert.Equal(t, tc.expectedErr, err)

			mockParser.AssertExpectations(t)
			mockDialer.AssertExpectations(t)

			if assert.Len(t, sent, 1) {
				assert.Equal(t, []string{"admin@example.com"}, sent[0].GetHeader("To"))

				if tc.replyTo != "" {
					assert.Equal(t, []string{tc.replyTo}, sent[0].GetHeader("Reply-To"))
				} else {
					assert.Empty(t, sent[0].GetHeader("Reply-To"))
				}
			}
		})
	}
}

func TestSendEmailTemplateError(t *testing.T) {
	mailer := Mail{
		dialer: new(MockDialer),
		parser: NewTemplate(),
		sender: "sender@example.com",
	}

	err := mailer.send("admin@example.com", "", nil, "missing.html")
	assert.Error(t, err)
}
