package mailservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	template := NewTemplate()

	msg := ContactMessage{
		Name:        "Jane <Doe>",
		Email:       "jane@example.com",
		Message:     "I loved your <b>latest</b> post.",
		SubmittedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		templateName string
		data         any
		expectedErr  bool
	}{
		{
			name:         "success",
			templateName: contactTemplate,
			data:         msg,
			expectedErr:  false,
		},
		{
			name:         "invalid template name",
			templateName: "invalid_template.html",
			data:         nil,
			expectedErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p, h, err := template.ParseTemplate(tc.templateName, tc.data)
			assert.Equal(t, tc.expectedErr, err != nil)

			if err == nil {
				assert.Contains(t, s.String(), "New contact message from")
				assert.Contains(t, p.String(), "01 May 2024 10:30 UTC")
				assert.Contains(t, h.String(), "&lt;b&gt;latest&lt;/b&gt;")
				assert.NotContains(t, h.String(), "<b>latest</b>")
			}
		})
	}
}
