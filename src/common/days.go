package common

import "strings"

// DayAbbrev maps a weekday abbreviation to its full name.
type DayAbbrev struct {
	Abbrev string
	Name   string
}

// DayTable is ordered; prefix matching takes the first entry that fits.
type DayTable []DayAbbrev

// DefaultDayTable returns a fresh copy of the Mon..Sun table.
func DefaultDayTable() DayTable {
	return DayTable{
		{"Mon", "Monday"},
		{"Tue", "Tuesday"},
		{"Wed", "Wednesday"},
		{"Thu", "Thursday"},
		{"Fri", "Friday"},
		{"Sat", "Saturday"},
		{"Sun", "Sunday"},
	}
}

// Expand turns free text like "Mon, Wed,Fri" into full day names.
//
// "Daily" anywhere in the text yields the whole week. Otherwise each
// comma-separated token is looked up exactly, then by abbreviation prefix
// ("Thurs" -> Thursday). Unknown tokens are dropped and repeated days are kept
// once, in first-seen order. Never fails; the result may be empty.
func (t DayTable) Expand(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if strings.Contains(text, "Daily") {
		week := make([]string, len(t))
		for i, d := range t {
			week[i] = d.Name
		}
		return week
	}

	var days []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(text, ",") {
		name, ok := t.lookup(strings.TrimSpace(token))
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		days = append(days, name)
	}
	return days
}

func (t DayTable) lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, d := range t {
		if token == d.Abbrev {
			return d.Name, true
		}
	}
	for _, d := range t {
		if strings.HasPrefix(token, d.Abbrev) {
			return d.Name, true
		}
	}
	return "", false
}
