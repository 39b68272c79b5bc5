package resend

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const (
	bookingConfirmationSubject = "Varausvahvistus – Parturi"
	bookingReminderSubject     = "Muistutus huomisesta varauksestasi"
	verificationCodeSubject    = "Vahvistuskoodisi"
	errorReportSubject         = "Varausjärjestelmän virheraportti"
)

// EmailServiceLine is one service row in a booking email.
type EmailServiceLine struct {
	Name  string
	Price float64
}

// BookingEmailData carries everything the booking emails render.
type BookingEmailData struct {
	CustomerName         string
	Date                 time.Time
	Time                 string
	Services             []EmailServiceLine
	TotalPrice           float64
	TotalDurationMinutes int
}

// ErrorReportData is the owner-facing failure summary.
type ErrorReportData struct {
	Operation     string
	Message       string
	Details       string
	Hint          string
	CustomerEmail string
	OccurredAt    time.Time
}

var finnishWeekdays = [...]string{
	"sunnuntai", "maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai",
}

func finnishDate(t time.Time) string {
	return fmt.Sprintf("%s %d.%d.%d", finnishWeekdays[t.Weekday()], t.Day(), int(t.Month()), t.Year())
}

func serviceRows(services []EmailServiceLine) string {
	var sb strings.Builder
	for _, svc := range services {
		sb.WriteString(fmt.Sprintf(
			`<tr><td style="padding:4px 12px 4px 0">%s</td><td style="padding:4px 0">%.2f €</td></tr>`,
			html.EscapeString(svc.Name), svc.Price,
		))
	}
	return sb.String()
}

func bookingConfirmationHTML(data BookingEmailData) string {
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:560px">
<h2>Kiitos varauksestasi, %s!</h2>
<p>Varauksesi on vastaanotettu. Tässä yhteenveto:</p>
<p><strong>%s klo %s</strong></p>
<table style="border-collapse:collapse">%s</table>
<p>Kesto yhteensä: %d min<br>Hinta yhteensä: %.2f €</p>
<p>Jos sinun täytyy perua tai siirtää varausta, otathan yhteyttä liikkeeseen.</p>
<p>Nähdään pian!</p>
</div>`,
		html.EscapeString(data.CustomerName),
		finnishDate(data.Date), html.EscapeString(data.Time),
		serviceRows(data.Services),
		data.TotalDurationMinutes, data.TotalPrice,
	)
}

func bookingReminderHTML(data BookingEmailData) string {
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:560px">
<h2>Hei %s!</h2>
<p>Muistutus: sinulla on varaus huomenna <strong>%s klo %s</strong>.</p>
<table style="border-collapse:collapse">%s</table>
<p>Jos et pääse paikalle, ilmoitathan siitä liikkeeseen mahdollisimman pian.</p>
<p>Tervetuloa!</p>
</div>`,
		html.EscapeString(data.CustomerName),
		finnishDate(data.Date), html.EscapeString(data.Time),
		serviceRows(data.Services),
	)
}

func verificationCodeHTML(code string) string {
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:560px">
<h2>Vahvistuskoodisi</h2>
<p>Syötä tämä koodi nähdäksesi leimakorttisi:</p>
<p style="font-size:32px;letter-spacing:8px;font-weight:bold">%s</p>
<p>Koodi on voimassa 15 minuuttia. Jos et pyytänyt koodia, voit jättää tämän viestin huomiotta.</p>
</div>`,
		html.EscapeString(code),
	)
}

func errorReportHTML(report ErrorReportData) string {
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:560px">
<h2>Varausjärjestelmän virheraportti</h2>
<p><strong>Toiminto:</strong> %s<br>
<strong>Aika:</strong> %s</p>
<p><strong>Virhe:</strong> %s</p>
<p><strong>Lisätiedot:</strong> %s<br>
<strong>Vihje:</strong> %s</p>
<p><strong>Asiakkaan sähköposti:</strong> %s</p>
</div>`,
		html.EscapeString(report.Operation),
		report.OccurredAt.Format("02.01.2006 15:04:05"),
		html.EscapeString(report.Message),
		html.EscapeString(report.Details),
		html.EscapeString(report.Hint),
		html.EscapeString(report.CustomerEmail),
	)
}
