package domain

import (
	"fmt"
	"strings"
	"time"
)

// Reference is the human-readable settlement code of a disbursement,
// deterministic for a given merchant and calendar date.
type Reference struct {
	value string
}

func NewReference(merchantID string, date time.Time) (Reference, error) {
	if strings.TrimSpace(merchantID) == "" {
		return Reference{}, NewValidationError("Merchant ID is required")
	}
	if date.IsZero() {
		return Reference{}, NewValidationError("Date is required")
	}

	prefix := merchantID
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	value := fmt.Sprintf("DISB-%s-%s", strings.ToUpper(prefix), date.UTC().Format("2006-01-02"))
	return Reference{value: value}, nil
}

func (r Reference) Value() string {
	return r.value
}
