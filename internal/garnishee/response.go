// Package garnishee parses a third party's answer to an İİK 89 garnishment
// notice into structured facts and a recommended next action.
package garnishee

import (
	"time"

	"github.com/tkaraca/icra-analiz/constants"
)

// Response holds everything extracted from a single notice answer. Created
// once by the parser and never mutated afterwards.
type Response struct {
	CounterpartyName   string                     `json:"counterparty_name"`
	CounterpartyKind   constants.CounterpartyKind `json:"counterparty_kind"`
	NoticeTier         constants.NoticeTier       `json:"notice_tier"`
	Status             constants.ResponseStatus   `json:"status"`
	BlockedAmount      *float64                   `json:"blocked_amount,omitempty"`
	AccountBalance     *float64                   `json:"account_balance,omitempty"`
	AccountIdentifiers []string                   `json:"account_identifiers,omitempty"`
	ResponseDate       *time.Time                 `json:"response_date,omitempty"`
	Rationale          string                     `json:"rationale"`
	RecommendedAction  string                     `json:"recommended_action"`
	SourceFile         string                     `json:"source_file,omitempty"`
	SourceText         string                     `json:"-"`
}

// HasFunds reports whether the response carries a positive blocked amount.
func (r Response) HasFunds() bool {
	return r.BlockedAmount != nil && *r.BlockedAmount > 0
}
