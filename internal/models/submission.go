package models

// Submission represents a contract submission from Redis stream.
// Either ABI carries the raw document inline, or Address names a
// contract whose ABI is fetched from the explorer API.
type Submission struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	ABI        string `json:"abi"`
	Source     string `json:"source"`
}
