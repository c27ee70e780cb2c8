package model

// Birthday is one patient birthday row from the upstream export. Month and
// Day drive filtering and grouping; BirthDate is the display form and is
// trusted to agree with them.
type Birthday struct {
	RowID       int         `json:"row_id"`
	Patient     string      `json:"patient"`
	Gender      string      `json:"gender"`
	BirthDate   string      `json:"birth_date"`
	Month       int         `json:"month"`
	Day         int         `json:"day"`
	Phone       string      `json:"phone,omitempty"`
	PhoneStatus PhoneStatus `json:"phone_status"`
}

// BirthdayFilter holds the active constraints for the birthdays view.
// Month and Day use 0 for "no constraint".
type BirthdayFilter struct {
	Search string
	Month  int
	Day    int
	Gender string
	Phone  PhoneStatus
}

// BirthdayOptions are the selector values derived from the current
// collection. Months are not derived: the selector is the fixed 1..12 set.
type BirthdayOptions struct {
	Days    []int    `json:"days"`
	Genders []string `json:"genders"`
}

// BirthdayView is the computed presentation of the birthday collection.
// ThisMonth tags the filtered rows whose month matches the injected "now";
// it is a highlight section, never an exclusion.
type BirthdayView struct {
	Birthdays     []Birthday `json:"birthdays"`
	ThisMonth     []Birthday `json:"this_month"`
	Total         int        `json:"total"`
	Matched       int        `json:"matched"`
	ValidPhones   int        `json:"valid_phones"`
	InvalidPhones int        `json:"invalid_phones"`
}
