package model

// GoodService is the only severity description treated as a normal service.
const GoodService = "Good Service"

// StatusRecord is one element of a line's lineStatuses array.
type StatusRecord struct {
	StatusSeverityDescription string `json:"statusSeverityDescription"`
	Reason                    string `json:"reason,omitempty"`
}

func (s StatusRecord) IsGoodService() bool {
	return s.StatusSeverityDescription == GoodService
}

// LineStatusEntry is one element of the /line/mode/tube/status response.
// Fields the API sends that are not listed here are ignored.
type LineStatusEntry struct {
	Name         string         `json:"name"`
	LineStatuses []StatusRecord `json:"lineStatuses"`
}

// CurrentStatus returns the first status record, which is the one reported.
func (e LineStatusEntry) CurrentStatus() (StatusRecord, bool) {
	if len(e.LineStatuses) == 0 {
		return StatusRecord{}, false
	}
	return e.LineStatuses[0], true
}
