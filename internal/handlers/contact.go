package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
)

var (
	ErrInvalidContact  = errors.New("invalid contact message")
	ErrMailUnavailable = errors.New("SMTP credentials not configured")
)

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Validate checks the fields and rejects header injection attempts.
func (m ContactMessage) Validate() error {
	switch {
	case m.Name == "" || utf8.RuneCountInString(m.Name) > 100:
		return fmt.Errorf("%w: name is required (max 100 characters)", ErrInvalidContact)
	case strings.ContainsAny(m.Name+m.Email, "\r\n"):
		return fmt.Errorf("%w: line breaks are not allowed in name or email", ErrInvalidContact)
	case m.Message == "" || utf8.RuneCountInString(m.Message) > 5000:
		return fmt.Errorf("%w: message is required (max 5000 characters)", ErrInvalidContact)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: email address is not valid", ErrInvalidContact)
	}
	return nil
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, m ContactMessage) error
}

// SMTPMailer sends mail with net/smtp and PLAIN auth.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer returns a mailer for the given settings.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send composes and sends the message to the configured inbox.
func (s *SMTPMailer) Send(_ context.Context, m ContactMessage) error {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrMailUnavailable
	}
	to := s.cfg.To
	if to == "" {
		to = s.cfg.User
	}
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{to}, composeMail(s.cfg.User, to, m)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func composeMail(from, to string, m ContactMessage) []byte {
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + m.Name + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

type contactResult struct {
	Message string
}

// Contact handles the HTMX contact form and returns a result fragment.
func (h *Handler) Contact(c *gin.Context) {
	msg := ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	if err := msg.Validate(); err != nil {
		c.HTML(http.StatusOK, "contact-error", contactResult{
			Message: "Please check the form: " + strings.TrimPrefix(err.Error(), ErrInvalidContact.Error()+": "),
		})
		return
	}
	if h.mailer == nil {
		c.HTML(http.StatusOK, "contact-error", contactResult{
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		h.logger.Error("contact mail failed", zap.Error(err))
		// HTMX only swaps 2xx responses by default.
		c.HTML(http.StatusOK, "contact-error", contactResult{
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	h.logger.Info("contact mail sent")
	c.HTML(http.StatusOK, "contact-success", contactResult{
		Message: "Thank you for your message! I'll get back to you soon.",
	})
}
