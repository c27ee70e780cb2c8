package view

import (
	"sort"

	"github.com/altikastudio/dashboard-api/internal/model"
)

// AppointmentOptions derives the distinct selector values present in the
// collection, sorted ascending. Empty input yields empty option sets.
func AppointmentOptions(records []model.Appointment) model.AppointmentOptions {
	dates := make(map[string]struct{})
	doctors := make(map[string]struct{})
	activities := make(map[string]struct{})
	for _, r := range records {
		dates[r.Date] = struct{}{}
		doctors[r.Doctor] = struct{}{}
		activities[r.Activity] = struct{}{}
	}
	return model.AppointmentOptions{
		Dates:      sortedKeys(dates),
		Doctors:    sortedKeys(doctors),
		Activities: sortedKeys(activities),
	}
}

// BirthdayOptions derives the distinct days (numeric order) and genders
// present in the collection.
func BirthdayOptions(records []model.Birthday) model.BirthdayOptions {
	days := make(map[int]struct{})
	genders := make(map[string]struct{})
	for _, r := range records {
		days[r.Day] = struct{}{}
		genders[r.Gender] = struct{}{}
	}

	dayList := make([]int, 0, len(days))
	for d := range days {
		dayList = append(dayList, d)
	}
	sort.Ints(dayList)

	return model.BirthdayOptions{
		Days:    dayList,
		Genders: sortedKeys(genders),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
