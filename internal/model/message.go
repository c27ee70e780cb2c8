package model

// MessageLink is a composed message plus the deep link that opens the
// messaging client pre-populated with it.
type MessageLink struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}
