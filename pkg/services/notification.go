package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pear-vc/demoday-engine/pkg/models"
)

// Notification is a pre-filled e-mail handed to the user's mail client
// when a connection request is accepted. Delivery is best effort: the
// server only composes it, the client decides whether to send.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// MailtoURL encodes the whole message for a mail-client handoff.
	MailtoURL string `json:"mailtoUrl"`
}

// ComposeAcceptanceEmail builds the acceptance notification for an
// accepted connection request.
func ComposeAcceptanceEmail(request *models.ConnectionRequest) *Notification {
	subject := fmt.Sprintf("%s accepted your connection request", request.CompanyName)

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", request.InvestorName)
	fmt.Fprintf(&body, "Great news! %s has accepted your connection request.\n\n", request.CompanyName)
	if request.FounderResponse != "" {
		fmt.Fprintf(&body, "Message from the team:\n%s\n\n", request.FounderResponse)
	}
	body.WriteString("Best,\nThe Pear Demo Day Team")

	return &Notification{
		To:        request.InvestorEmail,
		Subject:   subject,
		Body:      body.String(),
		MailtoURL: mailtoURL(request.InvestorEmail, subject, body.String()),
	}
}

// mailtoURL builds a mailto link. QueryEscape encodes spaces as "+",
// which some mail clients render literally, so those are rewritten to
// percent encoding.
func mailtoURL(to, subject, body string) string {
	escape := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, escape(subject), escape(body))
}
