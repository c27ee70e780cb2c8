package model

// PhoneStatus is the upstream's precomputed verdict on whether a stored
// number is usable for messaging. The dashboard never re-validates numbers.
type PhoneStatus string

const (
	PhoneValid   PhoneStatus = "valid"
	PhoneInvalid PhoneStatus = "invalid"
)

// Appointment is one scheduled visit as flattened by the upstream export.
// RowID is the only stable identity across re-fetches.
type Appointment struct {
	RowID       int         `json:"row_id"`
	Patient     string      `json:"patient"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Doctor      string      `json:"doctor"`
	Activity    string      `json:"activity"`
	Phone       string      `json:"phone,omitempty"`
	PhoneStatus PhoneStatus `json:"phone_status"`
}

// AppointmentFilter holds the active constraints for the appointments view.
// A zero value on any field means "no constraint".
type AppointmentFilter struct {
	Search   string
	Date     string
	Doctor   string
	Activity string
	Phone    PhoneStatus
}

// AppointmentOptions are the legal selector values derived from the
// current collection.
type AppointmentOptions struct {
	Dates      []string `json:"dates"`
	Doctors    []string `json:"doctors"`
	Activities []string `json:"activities"`
}

// AgendaGroup is one day of the agenda view, members ordered by time.
type AgendaGroup struct {
	Date         string        `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

// AppointmentView is the computed presentation of the appointment
// collection. Groups is populated only in agenda mode.
type AppointmentView struct {
	Appointments  []Appointment `json:"appointments"`
	Groups        []AgendaGroup `json:"groups,omitempty"`
	Total         int           `json:"total"`
	Matched       int           `json:"matched"`
	ValidPhones   int           `json:"valid_phones"`
	InvalidPhones int           `json:"invalid_phones"`
}
