// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"planner/pkg/utils"
)

type IMailService interface {
	// SendTripConfirmationMail asks the trip owner to confirm the freshly
	// created trip. The link points at /trips/{tripId}/confirm.
	SendTripConfirmationMail(toName, toEmail, destination string, startAt, endsAt time.Time, tripId string) error

	// SendParticipantConfirmationMail asks an invitee to confirm their
	// presence. The link points at /participants/{participantId}/confirm.
	SendParticipantConfirmationMail(toEmail, destination string, startAt, endsAt time.Time, participantId string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@plann.er"
	FromName   string // display name, e.g. "plann.er crew"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName    string
	AppBaseURL string // e.g. "https://api.plann.er", base of confirmation links
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("confirmHTML").Parse(confirmHTMLTemplate)),
		textTpl: template.Must(template.New("confirmText").Parse(confirmTextTemplate)),
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendTripConfirmationMail(toName, toEmail, destination string, startAt, endsAt time.Time, tripId string) error {
	link := fmt.Sprintf("%s/trips/%s/confirm", strings.TrimRight(s.cfg.AppBaseURL, "/"), tripId)
	subject := fmt.Sprintf("Confirm your trip to %s", destination)

	html, text, err := s.renderEmail(confirmMailData{
		Title: subject,
		Intro: fmt.Sprintf("Confirm your trip to %s from %s until %s.",
			destination, utils.FormatLongDate(startAt), utils.FormatLongDate(endsAt)),
		ButtonURL: link,
		ButtonTxt: "Confirm Trip",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(toEmail, subject, html, text)
}

func (s *smtpMailService) SendParticipantConfirmationMail(toEmail, destination string, startAt, endsAt time.Time, participantId string) error {
	link := fmt.Sprintf("%s/participants/%s/confirm", strings.TrimRight(s.cfg.AppBaseURL, "/"), participantId)
	subject := fmt.Sprintf("Confirm your trip to %s", destination)

	html, text, err := s.renderEmail(confirmMailData{
		Title: subject,
		Intro: fmt.Sprintf("You have been invited on a trip to %s scheduled from %s until %s. Click the button below to confirm your presence.",
			destination, utils.FormatLongDate(startAt), utils.FormatLongDate(endsAt)),
		ButtonURL: link,
		ButtonTxt: "Confirm Presence",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(toEmail, subject, html, text)
}

// ------------------- Rendering -------------------

type confirmMailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const confirmHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#f8fafc;color:#0f172a;font-family:sans-serif;">
  <div style="max-width:600px;margin:0 auto;padding:40px 16px;line-height:1.6;font-size:16px;">
    <p style="font-weight:700;font-size:20px;">{{.AppName}}</p>
    <h1 style="font-size:24px;">{{.Title}}</h1>
    <p>{{.Intro}}</p>
    {{if .ButtonURL}}
      <p style="margin:32px 0;">
        <a href="{{.ButtonURL}}" style="display:inline-block;padding:14px 28px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:600;">{{.ButtonTxt}}</a>
      </p>
      <p style="color:#64748b;font-size:13px;">
        If the button doesn't work, copy and paste this link into your browser:<br>
        <a href="{{.ButtonURL}}">{{.ButtonURL}}</a>
      </p>
    {{end}}
    <p style="color:#64748b;font-size:13px;">&copy; {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

const confirmTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data confirmMailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	// Plaintext part
	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	// HTML part
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	// End
	write("--%s--\r\n", boundary)

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		return s.transmit(c, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	// Upgrade to TLS if supported
	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	return s.transmit(c, to, msg.Bytes())
}

func (s *smtpMailService) transmit(c *smtp.Client, to string, msg []byte) error {
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
