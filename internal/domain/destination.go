package domain

// Currency is the unit of money used at a destination.
type Currency struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DestinationInfo is country data produced by the external REST Countries
// lookup. The core attaches it to a trip and otherwise treats it as opaque —
// no field is validated or interpreted beyond storage and display.
type DestinationInfo struct {
	Country  string   `json:"country"`
	Capital  string   `json:"capital"`
	Currency Currency `json:"currency"`
	Flag     string   `json:"flag"`
}
