// Package notice aggregates parsed garnishee responses across a batch:
// which counterparties are missing a follow-up 89/x notice, how much is
// blocked in total, and what needs a warning.
package notice

import (
	"fmt"
	"sort"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/garnishee"
)

// escalatable are the first/second tier statuses that call for the next
// notice when none was sent yet.
var escalatable = map[constants.ResponseStatus]struct{}{
	constants.StatusAccountExistsNoBalance: {},
	constants.StatusNoResponseYet:          {},
	constants.StatusUnparseable:            {},
}

// Gap flags a counterparty whose escalation chain is missing a notice.
type Gap struct {
	Counterparty string                   `json:"counterparty"`
	TierToSend   constants.NoticeTier     `json:"tier_to_send"`
	ReasonStatus constants.ResponseStatus `json:"reason_status"`
}

// Summary is the batch-level view over all responses. A plain value,
// recomputed per batch.
type Summary struct {
	TotalBlocked     float64                                                  `json:"total_blocked"`
	PerCounterparty  map[string]map[constants.NoticeTier]garnishee.Response   `json:"per_counterparty"`
	MissingNotices   []Gap                                                    `json:"missing_notices"`
	CriticalWarnings []string                                                 `json:"critical_warnings"`
}

// Aggregator groups responses by counterparty and tier, keeping the most
// recent response per tier. Add and Merge are commutative: any partition of
// a batch, aggregated separately and merged in any order, yields the same
// Summary.
type Aggregator struct {
	byParty map[string]map[constants.NoticeTier]garnishee.Response
}

func NewAggregator() *Aggregator {
	return &Aggregator{byParty: make(map[string]map[constants.NoticeTier]garnishee.Response)}
}

// Add records one response, replacing an earlier response for the same
// counterparty and tier when this one is more recent.
func (a *Aggregator) Add(resp garnishee.Response) {
	tiers, ok := a.byParty[resp.CounterpartyName]
	if !ok {
		tiers = make(map[constants.NoticeTier]garnishee.Response)
		a.byParty[resp.CounterpartyName] = tiers
	}
	current, exists := tiers[resp.NoticeTier]
	if !exists || moreRecent(resp, current) {
		tiers[resp.NoticeTier] = resp
	}
}

// Merge folds another aggregator into this one.
func (a *Aggregator) Merge(other *Aggregator) {
	for _, tiers := range other.byParty {
		for _, resp := range tiers {
			a.Add(resp)
		}
	}
}

// Summarize derives gaps, warnings and totals from the grouped responses.
func (a *Aggregator) Summarize() Summary {
	s := Summary{
		PerCounterparty: make(map[string]map[constants.NoticeTier]garnishee.Response, len(a.byParty)),
	}

	parties := make([]string, 0, len(a.byParty))
	for name := range a.byParty {
		parties = append(parties, name)
	}
	sort.Strings(parties)

	for _, name := range parties {
		tiers := a.byParty[name]
		copied := make(map[constants.NoticeTier]garnishee.Response, len(tiers))
		for tier, resp := range tiers {
			copied[tier] = resp
			if resp.Status == constants.StatusFundsBlocked && resp.BlockedAmount != nil {
				s.TotalBlocked += *resp.BlockedAmount
			}
		}
		s.PerCounterparty[name] = copied

		s.MissingNotices = append(s.MissingNotices, gapsFor(name, tiers)...)
		s.CriticalWarnings = append(s.CriticalWarnings, warningsFor(name, tiers)...)
	}
	return s
}

// Aggregate is the one-shot form over a full batch.
func Aggregate(responses []garnishee.Response) Summary {
	agg := NewAggregator()
	for _, resp := range responses {
		agg.Add(resp)
	}
	return agg.Summarize()
}

// gapsFor applies the escalation rule: an escalatable first-tier response
// with no second-tier response wants a second notice; same for second to
// third.
func gapsFor(name string, tiers map[constants.NoticeTier]garnishee.Response) []Gap {
	var gaps []Gap
	steps := []struct{ have, want constants.NoticeTier }{
		{constants.TierFirst, constants.TierSecond},
		{constants.TierSecond, constants.TierThird},
	}
	for _, step := range steps {
		resp, ok := tiers[step.have]
		if !ok {
			continue
		}
		if _, escalate := escalatable[resp.Status]; !escalate {
			continue
		}
		if _, sent := tiers[step.want]; sent {
			continue
		}
		gaps = append(gaps, Gap{
			Counterparty: name,
			TierToSend:   step.want,
			ReasonStatus: resp.Status,
		})
	}
	return gaps
}

func warningsFor(name string, tiers map[constants.NoticeTier]garnishee.Response) []string {
	var warnings []string
	for _, tier := range []constants.NoticeTier{
		constants.TierFirst, constants.TierSecond, constants.TierThird, constants.TierUnknown,
	} {
		resp, ok := tiers[tier]
		if !ok {
			continue
		}
		switch {
		case resp.Status == constants.StatusObjected:
			warnings = append(warnings,
				fmt.Sprintf("%s: %s ihbarnamesine itiraz edildi; itirazın kaldırılması için süre işliyor", name, tier))
		case resp.HasFunds():
			warnings = append(warnings,
				fmt.Sprintf("%s: %.2f TL bloke altında; dosyaya aktarım talep edilmeli", name, *resp.BlockedAmount))
		}
	}
	return warnings
}

// moreRecent orders two responses for the same counterparty and tier. Dated
// responses beat undated ones; ties break on source file, status, blocked
// amount and finally rationale, a total order over everything the parser can
// produce, so the selection is independent of insertion order.
func moreRecent(a, b garnishee.Response) bool {
	switch {
	case a.ResponseDate == nil && b.ResponseDate == nil:
		return tieBreak(a, b)
	case a.ResponseDate == nil:
		return false
	case b.ResponseDate == nil:
		return true
	case a.ResponseDate.Equal(*b.ResponseDate):
		return tieBreak(a, b)
	default:
		return a.ResponseDate.After(*b.ResponseDate)
	}
}

func tieBreak(a, b garnishee.Response) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile > b.SourceFile
	}
	if a.Status != b.Status {
		return a.Status > b.Status
	}
	if av, bv := blockedOrNegative(a), blockedOrNegative(b); av != bv {
		return av > bv
	}
	return a.Rationale > b.Rationale
}

func blockedOrNegative(r garnishee.Response) float64 {
	if r.BlockedAmount != nil {
		return *r.BlockedAmount
	}
	return -1
}
