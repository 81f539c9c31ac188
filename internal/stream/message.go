package stream

import (
	"fmt"

	"github.com/clonelens/clonelens/internal/models"
)

// StreamMessage is one raw entry read from the Redis stream.
type StreamMessage struct {
	ID     string
	Fields map[string]string
}

// ParseSubmission validates and converts raw stream fields into a
// submission. A usable submission names a collection and carries either an
// inline abi document or a contract address to fetch.
func ParseSubmission(msg *StreamMessage) (*models.Submission, error) {
	submission := &models.Submission{
		Collection: msg.Fields["collection"],
		Name:       msg.Fields["name"],
		Address:    msg.Fields["address"],
		ABI:        msg.Fields["abi"],
		Source:     msg.Fields["source"],
	}

	if submission.Collection == "" {
		return nil, fmt.Errorf("message %s missing collection", msg.ID)
	}
	if submission.ABI == "" && submission.Address == "" {
		return nil, fmt.Errorf("message %s carries neither abi nor address", msg.ID)
	}

	return submission, nil
}
