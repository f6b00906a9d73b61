package notify

import (
	"fmt"
	"html"
	"strings"

	"pupperazi-api/internal/domain/lead"
)

func businessSMSBody(sub lead.Submission) string {
	var b strings.Builder
	b.WriteString("New grooming inquiry: ")
	b.WriteString(sub.NameAndPhone())
	b.WriteString(" | Pet: ")
	b.WriteString(sub.PetsNameAndBreed())
	if sub.IsNewCustomer() {
		b.WriteString(" | NEW customer")
	} else {
		b.WriteString(" | returning customer")
	}
	if sub.DateTimeRequested() != "" {
		b.WriteString(" | Requested: ")
		b.WriteString(sub.DateTimeRequested())
	}
	return b.String()
}

func customerSMSBody(sub lead.Submission) string {
	return fmt.Sprintf(
		"Hi %s! Thanks for reaching out to Pupperazi Pet Spa about %s. We'll get back to you shortly to confirm a time. 🐾",
		sub.ContactName(), sub.PetsNameAndBreed(),
	)
}

func customerEmail(sub lead.Submission) EmailMessage {
	name := html.EscapeString(sub.ContactName())
	pet := html.EscapeString(sub.PetsNameAndBreed())

	body := fmt.Sprintf(`<div style="font-family:sans-serif;max-width:600px">
<h2>Thanks for reaching out, %s!</h2>
<p>We received your grooming inquiry for <strong>%s</strong> and will be in touch shortly to confirm a time.</p>
<p>If anything changes in the meantime, just reply to this email.</p>
<p>— The Pupperazi Pet Spa team</p>
</div>`, name, pet)

	return EmailMessage{
		To:      sub.Email(),
		Subject: "We got your grooming request! 🐶",
		HTML:    body,
	}
}

func businessEmail(sub lead.Submission, adminTo string) EmailMessage {
	rows := [][2]string{
		{"Contact", sub.NameAndPhone()},
		{"Email", sub.Email()},
		{"New customer", sub.NewCustomer()},
		{"Pet", sub.PetsNameAndBreed()},
		{"Requested time", sub.DateTimeRequested()},
		{"Message", sub.Message()},
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family:sans-serif;max-width:600px"><h2>New website inquiry</h2><table cellpadding="6">`)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(row[0]), html.EscapeString(row[1]))
	}
	b.WriteString("</table></div>")

	return EmailMessage{
		To:      adminTo,
		Subject: "New grooming inquiry from " + sub.ContactName(),
		HTML:    b.String(),
		ReplyTo: sub.Email(),
	}
}
