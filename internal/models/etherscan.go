package models

// EtherscanResponse represents the envelope returned by the explorer
// getabi endpoint. Result holds the ABI JSON as a string on success, or
// an error message when Status is "0".
type EtherscanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}
