package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

const brand = "RiseFlow Hub"

type message struct {
	subject string
	title   string
	summary string
	html    string
	text    string
}

type emailData struct {
	Heading  string
	Name     string
	Title    string
	Body     string
	Deadline string
	Link     string
	Action   string
	Brand    string
}

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:24px;background:#f6f7f9;font-family:Arial,sans-serif;color:#1f2933;">
<div style="max-width:560px;margin:0 auto;background:#fff;border-radius:12px;padding:32px;">
<h1 style="margin:0 0 16px;font-size:24px;">{{.Heading}}</h1>
<p style="margin:0 0 16px;">Hi {{.Name}},</p>
<p style="margin:0 0 16px;">{{.Body}} <strong>{{.Title}}</strong>.</p>
{{- with .Deadline}}
<p style="margin:0 0 16px;">Deadline: {{.}}</p>
{{- end}}
{{- if .Link}}
<p style="margin:0 0 24px;"><a href="{{.Link}}" style="display:inline-block;background:#0FA958;color:#fff;padding:12px 24px;border-radius:8px;text-decoration:none;font-weight:600;">{{.Action}}</a></p>
{{- end}}
<p style="margin:0;">The {{.Brand}} team</p>
</div>
</body>
</html>
`))

// compose builds the subject and bodies for a notice.
func compose(n domain.Notice, link string) (message, error) {
	name := n.Recipient.Name
	if name == "" {
		name = "there"
	}
	title := n.AgreementTitle
	if title == "" {
		title = "Agreement"
	}

	data := emailData{Name: name, Title: title, Link: link, Brand: brand}
	var msg message

	switch n.Kind {
	case domain.NotificationAgreementPending:
		data.Heading = "Agreement pending your signature"
		data.Body = "You have an agreement waiting for your signature:"
		data.Action = "Sign agreement"
		if n.Deadline != nil {
			data.Deadline = n.Deadline.UTC().Format(time.DateOnly)
		}
		msg.subject = fmt.Sprintf("%s: Sign %s", brand, title)
		msg.title = "Agreement to sign"
		msg.summary = fmt.Sprintf("Please sign %q.", title)
		if data.Deadline != "" {
			msg.summary += " Deadline: " + data.Deadline + "."
		}
	case domain.NotificationAgreementSigned:
		data.Heading = "Agreement signed"
		data.Body = "Thank you for signing. Your signature has been recorded for"
		data.Action = "View agreement"
		msg.subject = fmt.Sprintf("%s: Signed %s", brand, title)
		msg.title = "Agreement signed"
		msg.summary = fmt.Sprintf("Your signature on %q has been recorded.", title)
	case domain.NotificationAgreementCompleted:
		data.Heading = "Agreement fully signed"
		data.Body = "All parties have signed and a copy has been recorded for"
		data.Action = "View agreement"
		msg.subject = fmt.Sprintf("%s: Fully signed %s", brand, title)
		msg.title = "Agreement fully signed"
		msg.summary = fmt.Sprintf("%q is now signed by all parties.", title)
	default:
		return message{}, fmt.Errorf("unknown notice kind %q", n.Kind)
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return message{}, fmt.Errorf("render %s email: %w", n.Kind, err)
	}
	msg.html = buf.String()
	msg.text = plainText(data)
	return msg, nil
}

func plainText(d emailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n%s %s.\n", d.Name, d.Body, d.Title)
	if d.Deadline != "" {
		fmt.Fprintf(&b, "Deadline: %s\n", d.Deadline)
	}
	if d.Link != "" {
		fmt.Fprintf(&b, "\n%s: %s\n", d.Action, d.Link)
	}
	fmt.Fprintf(&b, "\nThe %s team\n", d.Brand)
	return b.String()
}
