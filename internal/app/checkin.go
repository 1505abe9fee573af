package app

import "github.com/alexanderramin/vitalog/internal/domain"

// CheckinResult is the outcome of submitting one check-in: the stored
// record, its score, and any guardrail warnings raised by the notes.
type CheckinResult struct {
	Domain   domain.Domain
	Record   *domain.Record
	Result   domain.ScoreResult
	Warnings []string
}
