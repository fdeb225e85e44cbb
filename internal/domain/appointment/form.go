package appointment

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FormNumber holds a numeric form field as typed. It decodes from a JSON
// string or a JSON number.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FormNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FormNumber(num.String())
	return nil
}

func (n FormNumber) blank() bool { return strings.TrimSpace(string(n)) == "" }

// float parses a finite decimal. Inf and NaN do not count as numbers.
func (n FormNumber) float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// minutes parses a whole number of minutes, truncating decimals.
func (n FormNumber) minutes() (int, bool) {
	s := strings.TrimSpace(string(n))
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	if f, ok := n.float(); ok {
		return int(f), true
	}
	return 0, false
}

// Form is the appointment as entered by the professional.
type Form struct {
	ClientID string     `json:"clientId"`
	Service  string     `json:"service"`
	Date     string     `json:"date"`
	Time     string     `json:"time"`
	Duration FormNumber `json:"duration"`
	Price    FormNumber `json:"price"`
	Deposit  FormNumber `json:"deposit"`
	Status   string     `json:"status"`

	ProcedureNotes string `json:"procedureNotes"`
	AISummary      string `json:"aiSummary"`
}
