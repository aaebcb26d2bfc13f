package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/config"
	"github.com/dsartorelli/book-site-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer relays contact form submissions to the author's inbox via the
// Resend API.
//
// Required configuration:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender address (e.g. "Site <noreply@example.com>")
//   - CONTACT_RECIPIENT: the inbox contact messages are delivered to
type Mailer struct {
	apiKey    string
	from      string
	recipient string
	client    *http.Client
}

func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		from:      config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		recipient: config.GetString(cfg, "CONTACT_RECIPIENT", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the mailer has everything it needs to send.
func (m *Mailer) Configured() bool {
	return m.apiKey != "" && m.from != "" && m.recipient != ""
}

// SendContactMessage formats and sends a contact form submission.
func (m *Mailer) SendContactMessage(msg models.ContactMessage) error {
	if !m.Configured() {
		return fmt.Errorf("mailer is not configured: RESEND_API_KEY, RESEND_FROM_EMAIL and CONTACT_RECIPIENT are required")
	}

	subject := fmt.Sprintf("Life in Instalments - %s %s", msg.FirstName, msg.LastName)
	html := fmt.Sprintf(
		"<h2>Life in Instalments</h2>"+
			"<p><strong>Name:</strong> %s %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		msg.FirstName, msg.LastName, msg.Email, msg.Message,
	)

	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		Subject: subject,
		Html:    html,
		Text:    msg.Message,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Contact message delivered via Resend")
	}

	return nil
}
