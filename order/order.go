// Package order holds the value types shared between the signal agents,
// the risk engine and paper execution.
package order

// Leg is one priced leg of a bracket: the entry, the protective stop or
// the take-profit.
type Leg struct {
	Type  string  `json:"type" yaml:"type"` // LIMIT, STOP, MARKET
	Price float64 `json:"price" yaml:"price"`
}

// Candidate is a trade idea produced by a strategy agent. It is immutable
// once produced; the risk engine never mutates it.
type Candidate struct {
	Symbol      string   `json:"symbol"`
	Side        string   `json:"side"` // only BUY is supported
	Entry       Leg      `json:"entry"`
	Stop        Leg      `json:"stop"`
	TakeProfit  Leg      `json:"take_profit"`
	TimeInForce string   `json:"time_in_force"`
	SetupTags   []string `json:"setup_tags,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
	ExpectedR   float64  `json:"expected_r_multiple,omitempty"`
	Notes       string   `json:"notes,omitempty"`

	// Ref and StrategyID are attached by the orchestrator when the
	// candidate is collected from a strategy payload.
	Ref        string `json:"candidate_ref,omitempty"`
	StrategyID string `json:"strategy_id,omitempty"`
}

// Intent is the bracket order built from an approved (or, for audit,
// rejected) candidate.
type Intent struct {
	Type        string `json:"type"` // always BRACKET
	Entry       Leg    `json:"entry"`
	Stop        Leg    `json:"stop"`
	TakeProfit  Leg    `json:"take_profit"`
	TimeInForce string `json:"time_in_force"`
}

// IntentFor mirrors a candidate into a bracket intent. Time-in-force
// defaults to DAY when the candidate leaves it empty.
func IntentFor(c Candidate) Intent {
	tif := c.TimeInForce
	if tif == "" {
		tif = "DAY"
	}
	return Intent{
		Type:        "BRACKET",
		Entry:       c.Entry,
		Stop:        c.Stop,
		TakeProfit:  c.TakeProfit,
		TimeInForce: tif,
	}
}
