package place

// Coordinates is a WGS84 longitude/latitude pair.
type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Record is a place entity returned by the external search provider.
// The engine only reads it.
type Record struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Link        string       `json:"link"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// dedupeKey identifies a record across queries.
func (r *Record) dedupeKey() string {
	return r.Name + "|" + r.Address
}

// ScoredRecord is a Record with its composite relevance score and the
// human-readable reasons that contributed.
type ScoredRecord struct {
	Record  Record   `json:"record"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Outcome is the terminal state of a resolution.
type Outcome string

const (
	OutcomePicked       Outcome = "picked"
	OutcomeAmbiguous    Outcome = "ambiguous"
	OutcomeNoCandidates Outcome = "no_candidates"
)

// Decision is the pipeline's final output. Picked carries exactly one
// record; Ambiguous carries a shortlist of up to three.
type Decision struct {
	Outcome   Outcome        `json:"outcome"`
	Picked    *ScoredRecord  `json:"picked,omitempty"`
	Shortlist []ScoredRecord `json:"shortlist,omitempty"`
	Trace     *Trace         `json:"trace,omitempty"`
}

// Trace is the diagnostic record of one resolution pass.
type Trace struct {
	RequestID   string   `json:"requestId"`
	Queries     []string `json:"queries"`
	StrongNames []string `json:"strongNames"`
	AreaHints   []string `json:"areaHints"`
	PhoneHints  []string `json:"phoneHints"`
	Candidates  int      `json:"candidates"`
	Records     int      `json:"records"`
	FailedCalls int      `json:"failedCalls"`
	ElapsedMs   int64    `json:"elapsedMs"`
}
