package message

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/altikastudio/dashboard-api/internal/model"
)

// ErrPhoneNotSendable rejects building a link for a record whose phone was
// flagged invalid by the upstream. An admin-facing send button must never
// target a known-bad number.
var ErrPhoneNotSendable = errors.New("phone number flagged invalid by the upstream")

const deepLinkBase = "https://api.whatsapp.com/send"

// Composer builds sanitized message texts from the clinic's templates.
type Composer struct {
	sanitizer *Sanitizer
	clinic    string
	sender    string
}

// NewComposer builds a composer. Clinic and sender appear verbatim in the
// templates.
func NewComposer(sanitizer *Sanitizer, clinic, sender string) *Composer {
	return &Composer{sanitizer: sanitizer, clinic: clinic, sender: sender}
}

// AppointmentReminder builds the reminder text for one appointment.
func (c *Composer) AppointmentReminder(patient, date, timeOfDay, activity string) string {
	raw := strings.Join([]string{
		fmt.Sprintf("¡Hola %s! \U0001F44B Soy %s de %s.", patient, c.sender, c.clinic),
		fmt.Sprintf("Recordatorio de su cita para el %s a las %s (%s).", date, timeOfDay, activity),
		"Por favor confirme su asistencia. ¡Feliz día! \U0001F642",
	}, "\n\n")
	return c.sanitizer.Clean(raw)
}

// BirthdayGreeting builds the greeting text. The salutation is feminine
// only for the literal gender value "femenino" (case-insensitive); every
// other value falls back to the masculine form, as the product ships today.
func (c *Composer) BirthdayGreeting(patient, gender string) string {
	salutation := "Querido"
	if strings.EqualFold(gender, "femenino") {
		salutation = "Querida"
	}
	raw := strings.Join([]string{
		fmt.Sprintf("¡Feliz cumpleaños, %s %s! \U0001F389\U0001F382", salutation, patient),
		fmt.Sprintf("En %s te deseamos un día lleno de sonrisas. \U0001F642", c.clinic),
		"Te obsequiamos un 10% de descuento en tu próxima cita durante este mes.",
		fmt.Sprintf("Con cariño,\nEquipo %s", c.clinic),
	}, "\n\n")
	return c.sanitizer.Clean(raw)
}

// AppointmentLink composes the reminder and wraps it into a deep link,
// guarding on the record's phone flag.
func (c *Composer) AppointmentLink(apt model.Appointment) (model.MessageLink, error) {
	if apt.PhoneStatus != model.PhoneValid {
		return model.MessageLink{}, ErrPhoneNotSendable
	}
	text := c.AppointmentReminder(apt.Patient, apt.Date, apt.Time, apt.Activity)
	return model.MessageLink{Link: DeepLink(apt.Phone, text), Message: text}, nil
}

// BirthdayLink composes the greeting and wraps it into a deep link,
// guarding on the record's phone flag.
func (c *Composer) BirthdayLink(b model.Birthday) (model.MessageLink, error) {
	if b.PhoneStatus != model.PhoneValid {
		return model.MessageLink{}, ErrPhoneNotSendable
	}
	text := c.BirthdayGreeting(b.Patient, b.Gender)
	return model.MessageLink{Link: DeepLink(b.Phone, text), Message: text}, nil
}

// DeepLink builds the WhatsApp URI for an already sanitized message. The
// phone keeps decimal digits only; the text is percent-encoded as a query
// value.
func DeepLink(phone, text string) string {
	values := url.Values{}
	values.Set("phone", NormalizePhone(phone))
	values.Set("text", text)
	return deepLinkBase + "?" + values.Encode()
}

// NormalizePhone strips everything that is not a decimal digit: spaces,
// parentheses, dashes and any leading plus sign.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
