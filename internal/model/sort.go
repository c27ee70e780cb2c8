package model

// SortField selects the comparison key for a record kind.
type SortField string

const (
	// Appointment sort fields. SortByDate compares the parsed date+time
	// instant, not the raw strings.
	SortByDate     SortField = "date"
	SortByPatient  SortField = "patient"
	SortByDoctor   SortField = "doctor"
	SortByActivity SortField = "activity"

	// Birthday sort fields. SortByCalendar orders by (month, day).
	SortByCalendar SortField = "calendar"
)

// SortDirection is the sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is the active sort field plus direction.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// DefaultAppointmentSort is ascending by the chronological instant.
func DefaultAppointmentSort() SortSpec {
	return SortSpec{Field: SortByDate, Direction: SortAsc}
}

// DefaultBirthdaySort is ascending by calendar position.
func DefaultBirthdaySort() SortSpec {
	return SortSpec{Field: SortByCalendar, Direction: SortAsc}
}

// NextSort returns the spec after the user selects a field: re-selecting
// the current field flips direction, a new field resets to ascending.
func NextSort(current SortSpec, field SortField) SortSpec {
	if current.Field == field {
		dir := SortAsc
		if current.Direction == SortAsc {
			dir = SortDesc
		}
		return SortSpec{Field: field, Direction: dir}
	}
	return SortSpec{Field: field, Direction: SortAsc}
}

// ViewMode is the presentation grouping strategy for appointments.
type ViewMode string

const (
	ViewCards  ViewMode = "cards"
	ViewTable  ViewMode = "table"
	ViewAgenda ViewMode = "agenda"
)
