package email

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Domenick1991/airops/internal/notification"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type templatePair struct {
	subject *template.Template
	body    *template.Template
}

var templates = map[notification.Kind]templatePair{
	notification.KindFlightDelayed: {
		subject: template.Must(template.New("subject").Parse(
			`Flight {{with .Flight}}{{.Name}}{{end}} has been delayed`)),
		body: template.Must(template.New("body").Parse(`Dear {{.Recipient.Name}},

We are sorry to inform you that your flight has been delayed.
{{with .Flight}}
Flight:    {{.Name}}
From:      {{.Departure}} ({{.DepartureCode}})
To:        {{.Arrival}} ({{.ArrivalCode}})
Departure: {{.StartTime.Format "02 Jan 2006 15:04 MST"}}
Gate:      {{.Gate}}
{{end}}{{if .Seat}}Seat:      {{.Seat}}
{{end}}
Booking reference: {{.TransactionID}}
`)),
	},
	notification.KindBookingLate: {
		subject: template.Must(template.New("subject").Parse(
			`Your booking {{.TransactionID}} is overdue`)),
		body: template.Must(template.New("body").Parse(`Dear {{.Recipient.Name}},

Your booking {{.TransactionID}}{{with .Flight}} for flight {{.Name}} ({{.DepartureCode}} - {{.ArrivalCode}}){{end}} has passed its due date and is now marked late.
Please contact us to complete or cancel it.
`)),
	},
	notification.KindPasswordReset: {
		subject: template.Must(template.New("subject").Parse(`Your password has been reset`)),
		body: template.Must(template.New("body").Parse(`Dear {{.Recipient.Name}},

A password reset was requested for your account. Your temporary password is:

    {{.TemporaryPassword}}

Sign in with it and change it right away.
`)),
	},
}

// Render builds the email for event.
func Render(event notification.Event) (Message, error) {
	pair, ok := templates[event.Kind]
	if !ok {
		return Message{}, fmt.Errorf("no template for %q", event.Kind)
	}

	var subject, body bytes.Buffer
	if err := pair.subject.Execute(&subject, event); err != nil {
		return Message{}, fmt.Errorf("render subject: %w", err)
	}
	if err := pair.body.Execute(&body, event); err != nil {
		return Message{}, fmt.Errorf("render body: %w", err)
	}
	return Message{To: event.Recipient.Email, Subject: subject.String(), Body: body.String()}, nil
}
