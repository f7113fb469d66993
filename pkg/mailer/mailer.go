// Package mailer sends transactional email: purchase alerts to sellers and
// accept/cancel notices to buyers. Delivery is always best-effort; a failed
// send never fails the request that triggered it.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Mailer defines the interface for sending a single HTML email.
type Mailer interface {
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
}

// SESMailer sends email through AWS SESv2.
type SESMailer struct {
	Client *sesv2.Client
	Sender string
}

// NewSESMailer creates a mailer sending from the given verified identity.
func NewSESMailer(client *sesv2.Client, sender string) *SESMailer {
	return &SESMailer{Client: client, Sender: sender}
}

// Make sure we conform to the interface
var _ Mailer = (*SESMailer)(nil)

// Send delivers one HTML email.
func (m *SESMailer) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	_, err := m.Client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.Sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}

// NoOpMailer discards all email. Used in local development and tests.
type NoOpMailer struct{}

// Send does nothing.
func (m *NoOpMailer) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	return nil
}
