// Package view computes the derived presentation of the fetched record
// collections: legal filter options, the filtered subset, the sorted or
// grouped order and the summary counts. Everything here is a pure function
// of its inputs; records are never mutated.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/altikastudio/dashboard-api/internal/model"
)

// FilterAppointments returns the subset matching every non-blank
// constraint. Search is a case-insensitive substring match over patient,
// doctor and activity; the rest are exact matches.
func FilterAppointments(records []model.Appointment, f model.AppointmentFilter) []model.Appointment {
	term := strings.ToLower(f.Search)
	out := make([]model.Appointment, 0, len(records))
	for _, r := range records {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Patient), term) &&
			!strings.Contains(strings.ToLower(r.Doctor), term) &&
			!strings.Contains(strings.ToLower(r.Activity), term) {
			continue
		}
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		if f.Doctor != "" && r.Doctor != f.Doctor {
			continue
		}
		if f.Activity != "" && r.Activity != f.Activity {
			continue
		}
		if f.Phone != "" && r.PhoneStatus != f.Phone {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterBirthdays returns the subset matching every non-blank constraint.
// Search matches the patient name only.
func FilterBirthdays(records []model.Birthday, f model.BirthdayFilter) []model.Birthday {
	term := strings.ToLower(f.Search)
	out := make([]model.Birthday, 0, len(records))
	for _, r := range records {
		if term != "" && !strings.Contains(strings.ToLower(r.Patient), term) {
			continue
		}
		if f.Month != 0 && r.Month != f.Month {
			continue
		}
		if f.Day != 0 && r.Day != f.Day {
			continue
		}
		if f.Gender != "" && r.Gender != f.Gender {
			continue
		}
		if f.Phone != "" && r.PhoneStatus != f.Phone {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortAppointments returns a new, stably sorted slice. The date field
// compares the parsed date+time instant; rows whose date cannot be parsed
// sort after all parseable rows in either direction.
func SortAppointments(records []model.Appointment, spec model.SortSpec) []model.Appointment {
	type keyed struct {
		apt     model.Appointment
		instant time.Time
		valid   bool
	}
	ks := make([]keyed, len(records))
	for i, r := range records {
		k := keyed{apt: r}
		if spec.Field == model.SortByDate {
			k.instant, k.valid = parseInstant(r.Date, r.Time)
		}
		ks[i] = k
	}

	desc := spec.Direction == model.SortDesc

	var less func(i, j int) bool
	switch spec.Field {
	case model.SortByPatient:
		less = func(i, j int) bool { return ks[i].apt.Patient < ks[j].apt.Patient }
	case model.SortByDoctor:
		less = func(i, j int) bool { return ks[i].apt.Doctor < ks[j].apt.Doctor }
	case model.SortByActivity:
		less = func(i, j int) bool { return ks[i].apt.Activity < ks[j].apt.Activity }
	default:
		// Unparseable rows sort after parseable ones in either direction,
		// so the direction applies inside the comparator rather than through
		// the outer inversion.
		dateDesc := desc
		desc = false
		less = func(i, j int) bool {
			if ks[i].valid != ks[j].valid {
				return ks[i].valid
			}
			if !ks[i].valid {
				return false
			}
			if dateDesc {
				return ks[j].instant.Before(ks[i].instant)
			}
			return ks[i].instant.Before(ks[j].instant)
		}
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(ks, less)

	out := make([]model.Appointment, len(ks))
	for i := range ks {
		out[i] = ks[i].apt
	}
	return out
}

// SortBirthdays returns a new, stably sorted slice. Calendar order compares
// (month, day).
func SortBirthdays(records []model.Birthday, spec model.SortSpec) []model.Birthday {
	out := make([]model.Birthday, len(records))
	copy(out, records)

	var less func(i, j int) bool
	switch spec.Field {
	case model.SortByPatient:
		less = func(i, j int) bool { return out[i].Patient < out[j].Patient }
	default:
		less = func(i, j int) bool {
			if out[i].Month != out[j].Month {
				return out[i].Month < out[j].Month
			}
			return out[i].Day < out[j].Day
		}
	}
	if spec.Direction == model.SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

// GroupAgenda partitions an already filtered and sorted slice by date.
// Groups keep the order in which their first member appears; members are
// re-ordered by time ascending because an agenda is chronological within
// a day regardless of the outer sort field.
func GroupAgenda(records []model.Appointment) []model.AgendaGroup {
	byDate := make(map[string]int)
	groups := make([]model.AgendaGroup, 0)
	for _, r := range records {
		idx, ok := byDate[r.Date]
		if !ok {
			idx = len(groups)
			byDate[r.Date] = idx
			groups = append(groups, model.AgendaGroup{Date: r.Date})
		}
		groups[idx].Appointments = append(groups[idx].Appointments, r)
	}
	for g := range groups {
		members := groups[g].Appointments
		type keyed struct {
			apt    model.Appointment
			offset time.Duration
			valid  bool
		}
		ks := make([]keyed, len(members))
		for i, m := range members {
			offset, ok := parseClock(m.Time)
			ks[i] = keyed{apt: m, offset: offset, valid: ok}
		}
		// Members whose time fails to parse sort after parseable ones, stably.
		sort.SliceStable(ks, func(i, j int) bool {
			if ks[i].valid != ks[j].valid {
				return ks[i].valid
			}
			return ks[i].offset < ks[j].offset
		})
		for i := range ks {
			members[i] = ks[i].apt
		}
	}
	return groups
}

// ComputeAppointmentView runs the full pipeline: filter, sort, group for
// agenda mode, and count. The result is always non-nil; an empty Matched
// with a non-zero Total is a legitimate "nothing matches" state.
func ComputeAppointmentView(records []model.Appointment, filter model.AppointmentFilter, spec model.SortSpec, mode model.ViewMode) model.AppointmentView {
	matched := SortAppointments(FilterAppointments(records, filter), spec)

	v := model.AppointmentView{
		Appointments: matched,
		Total:        len(records),
		Matched:      len(matched),
	}
	for _, r := range matched {
		if r.PhoneStatus == model.PhoneValid {
			v.ValidPhones++
		} else {
			v.InvalidPhones++
		}
	}
	if mode == model.ViewAgenda {
		v.Groups = GroupAgenda(matched)
	}
	return v
}

// ComputeBirthdayView runs the birthday pipeline and tags the current-month
// highlight section against the supplied "now".
func ComputeBirthdayView(records []model.Birthday, filter model.BirthdayFilter, spec model.SortSpec, now time.Time) model.BirthdayView {
	matched := SortBirthdays(FilterBirthdays(records, filter), spec)

	v := model.BirthdayView{
		Birthdays: matched,
		ThisMonth: make([]model.Birthday, 0),
		Total:     len(records),
		Matched:   len(matched),
	}
	for _, r := range matched {
		if r.PhoneStatus == model.PhoneValid {
			v.ValidPhones++
		} else {
			v.InvalidPhones++
		}
		if IsCurrentMonth(r.Month, now) {
			v.ThisMonth = append(v.ThisMonth, r)
		}
	}
	return v
}
