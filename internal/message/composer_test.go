package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altikastudio/dashboard-api/internal/model"
)

func testComposer() *Composer {
	return NewComposer(NewSanitizer(), "Altika Studio Dental", "Juliana")
}

func TestAppointmentReminderMentionsEveryField(t *testing.T) {
	got := testComposer().AppointmentReminder("Maria Garcia", "2025-03-10", "09:00", "Limpieza")

	assert.Contains(t, got, "¡Hola Maria Garcia!")
	assert.Contains(t, got, "Soy Juliana de Altika Studio Dental")
	assert.Contains(t, got, "el 2025-03-10 a las 09:00 (Limpieza)")
}

func TestBirthdayGreetingSalutation(t *testing.T) {
	c := testComposer()

	tests := []struct {
		gender string
		want   string
	}{
		{"Femenino", "Querida"},
		{"femenino", "Querida"},
		{"FEMENINO", "Querida"},
		{"Masculino", "Querido"},
		{"Otro", "Querido"},
		{"", "Querido"},
	}
	for _, tt := range tests {
		got := c.BirthdayGreeting("Maria", tt.gender)
		assert.Contains(t, got, tt.want+" Maria", "gender %q", tt.gender)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "573001234567", NormalizePhone("+57 (300) 123-4567"))
	assert.Equal(t, "3001234567", NormalizePhone("300 123 4567"))
	assert.Equal(t, "", NormalizePhone("sin numero"))
}

func TestDeepLinkEncoding(t *testing.T) {
	link := DeepLink("+57 300 1234567", "Hola ¿cómo está?")

	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?"))
	assert.Contains(t, link, "phone=573001234567")
	assert.NotContains(t, link, "¿", "text must be percent-encoded")
	assert.NotContains(t, link, " ")
}

func TestAppointmentLinkRejectsInvalidPhone(t *testing.T) {
	apt := model.Appointment{
		RowID:       7,
		Patient:     "Juan Perez",
		Phone:       "300 123 4567",
		PhoneStatus: model.PhoneInvalid,
	}

	link, err := testComposer().AppointmentLink(apt)
	require.ErrorIs(t, err, ErrPhoneNotSendable)
	assert.Empty(t, link.Link)
	assert.Empty(t, link.Message)
}

func TestAppointmentLinkBuildsForValidPhone(t *testing.T) {
	apt := model.Appointment{
		RowID:       7,
		Patient:     "Maria Garcia",
		Date:        "2025-03-10",
		Time:        "09:00",
		Activity:    "Limpieza",
		Phone:       "+57 300 1234567",
		PhoneStatus: model.PhoneValid,
	}

	link, err := testComposer().AppointmentLink(apt)
	require.NoError(t, err)
	assert.Contains(t, link.Link, "phone=573001234567")
	assert.Contains(t, link.Message, "Maria Garcia")
}

func TestBirthdayLinkGuard(t *testing.T) {
	b := model.Birthday{RowID: 2, Patient: "Ana", Gender: "Femenino", PhoneStatus: model.PhoneInvalid}

	_, err := testComposer().BirthdayLink(b)
	require.ErrorIs(t, err, ErrPhoneNotSendable)

	b.PhoneStatus = model.PhoneValid
	b.Phone = "301 555 0000"
	link, err := testComposer().BirthdayLink(b)
	require.NoError(t, err)
	assert.Contains(t, link.Message, "Querida Ana")
	assert.Contains(t, link.Link, "phone=3015550000")
}
