package directory

import "ausverity-backend/models"

var states = []models.State{
	{Code: "act", Name: "Australian Capital Territory", ShortName: "ACT"},
	{Code: "nsw", Name: "New South Wales", ShortName: "NSW"},
	{Code: "nt", Name: "Northern Territory", ShortName: "NT"},
	{Code: "qld", Name: "Queensland", ShortName: "QLD"},
	{Code: "sa", Name: "South Australia", ShortName: "SA"},
	{Code: "tas", Name: "Tasmania", ShortName: "TAS"},
	{Code: "vic", Name: "Victoria", ShortName: "VIC"},
	{Code: "wa", Name: "Western Australia", ShortName: "WA"},
}

var statesByCode = indexStates(states)

func indexStates(list []models.State) map[string]models.State {
	m := make(map[string]models.State, len(list))
	for _, s := range list {
		m[s.Code] = s
	}
	return m
}

// States returns every state and territory in display order
func States() []models.State {
	out := make([]models.State, len(states))
	copy(out, states)
	return out
}

// IsValidStateCode reports whether code is one of the known state codes
func IsValidStateCode(code string) bool {
	_, ok := statesByCode[code]
	return ok
}

// GetStateByCode returns the state for code
func GetStateByCode(code string) (models.State, bool) {
	s, ok := statesByCode[code]
	return s, ok
}
