package models

import (
	"encoding/json"
	"time"
)

type Step string

const (
	StepIdle      Step = "idle"
	StepInitiated Step = "initiated"
	StepStarted   Step = "started"
	StepLoading   Step = "loading"
	StepComparing Step = "comparing"
	StepRanking   Step = "ranking"
	StepCompleted Step = "completed"
	StepFailed    Step = "failed"
)

// ContractProfile represents an ABI profile stored in MongoDB
type ContractProfile struct {
	Collection string    `bson:"collection" json:"collection"`
	Name       string    `bson:"name" json:"name"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	Simhash64  string    `bson:"simhash64" json:"simhash64"`
	Selectors  []string  `bson:"selectors" json:"selectors"`
	Functions  []string  `bson:"functions" json:"functions"`
	Events     []string  `bson:"events" json:"events"`
	Source     string    `bson:"source" json:"source"` // stream, api, explorer
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Identifier returns the stable handle for a stored profile: the address
// when present, else the name.
func (p *ContractProfile) Identifier() string {
	if p.Address != "" {
		return p.Address
	}
	return p.Name
}

// MatchPair represents one ranked near-clone pair inside a report
type MatchPair struct {
	A               string   `bson:"a" json:"a"`
	B               string   `bson:"b" json:"b"`
	AName           string   `bson:"a_name" json:"a_name"`
	BName           string   `bson:"b_name" json:"b_name"`
	SimhashSim      float64  `bson:"simhash_sim" json:"simhash_sim"`
	SelectorJaccard float64  `bson:"selector_jaccard" json:"selector_jaccard"`
	Score           float64  `bson:"score" json:"score"`
	CommonSelectors []string `bson:"common_selectors" json:"common_selectors"`
	OnlyA           int      `bson:"only_a" json:"only_a"`
	OnlyB           int      `bson:"only_b" json:"only_b"`
}

// MatchReport represents an overall match run report
type MatchReport struct {
	RunID         string      `bson:"runId" json:"runId"`
	Collection    string      `bson:"collection" json:"collection"`
	Status        string      `bson:"status" json:"status"` // pending, completed, failed
	Profiles      int         `bson:"profiles" json:"profiles"`
	PairsCompared int         `bson:"pairs_compared" json:"pairs_compared"`
	TopPairs      []MatchPair `bson:"top_pairs" json:"top_pairs"`
	Error         string      `bson:"error,omitempty" json:"error,omitempty"`
	DurationMs    int64       `bson:"duration_ms" json:"duration_ms"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
}

// MatchRequest represents a request to run a collection-wide match
type MatchRequest struct {
	Collection string `json:"collection" binding:"required"`
	Top        int    `json:"top"`
}

// MatchResponse represents the response from the match endpoint
type MatchResponse struct {
	Step  Step   `json:"step"`
	RunID string `json:"runId"`
}

// ScanContract represents one inline ABI document to profile
type ScanContract struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	ABI     json.RawMessage `json:"abi" binding:"required"`
}

// ScanRequest represents a request to profile inline ABI documents
type ScanRequest struct {
	Collection string         `json:"collection" binding:"required"`
	Contracts  []ScanContract `json:"contracts" binding:"required"`
}

// ScanResult represents the outcome for a single scanned contract
type ScanResult struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Simhash64 string `json:"simhash64,omitempty"`
	Selectors int    `json:"selectors"`
	Functions int    `json:"functions"`
	Events    int    `json:"events"`
	Error     string `json:"error,omitempty"`
}

// ScanResponse represents the response from the scan endpoint
type ScanResponse struct {
	Collection string       `json:"collection"`
	Profiles   []ScanResult `json:"profiles"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
