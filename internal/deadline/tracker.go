// Package deadline tracks seizures against the statutory sale period. Each
// lien's state is re-derived from its input fields on every registration or
// mutation; there is no transition log to get out of sync.
package deadline

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

// Record is one tracked lien. Computed is derived; everything else is
// input.
type Record struct {
	ID                uuid.UUID           `json:"id"`
	AssetType         constants.AssetType `json:"asset_type"`
	SeizureDate       *time.Time          `json:"seizure_date,omitempty"`
	AssetDescription  string              `json:"asset_description"`
	SaleRequested     bool                `json:"sale_requested"`
	SaleRequestDate   *time.Time          `json:"sale_request_date,omitempty"`
	AdvancePaid       bool                `json:"advance_paid"`
	AdvancePaidAmount float64             `json:"advance_paid_amount"`
	Computed          Computed            `json:"computed"`
}

// Registration is the input to Register.
type Registration struct {
	AssetType         constants.AssetType
	SeizureDate       *time.Time
	AssetDescription  string
	SaleRequested     bool
	SaleRequestDate   *time.Time
	AdvancePaid       bool
	AdvancePaidAmount float64
}

// Report aggregates a batch of liens: counts per status and the advance sum
// still outstanding across time-limited, not-yet-paid records.
type Report struct {
	Counts               map[constants.LienStatus]int `json:"counts"`
	TotalRequiredAdvance float64                      `json:"total_required_advance"`
	Records              []Record                     `json:"records"`
}

// Merge combines two partial reports; counts and sums are commutative, so
// merge order never changes the result.
func (r Report) Merge(other Report) Report {
	merged := Report{
		Counts:               make(map[constants.LienStatus]int, len(r.Counts)+len(other.Counts)),
		TotalRequiredAdvance: r.TotalRequiredAdvance + other.TotalRequiredAdvance,
		Records:              append(append([]Record{}, r.Records...), other.Records...),
	}
	for status, n := range r.Counts {
		merged.Counts[status] += n
	}
	for status, n := range other.Counts {
		merged.Counts[status] += n
	}
	return merged
}

// Tracker is the per-batch lien registry.
type Tracker struct {
	cfg    *rules.Config
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	records []*Record
	byID    map[uuid.UUID]*Record
}

// NewTracker builds a tracker over the injected deadline rules. The clock
// is time.Now unless overridden with WithClock.
func NewTracker(cfg *rules.Config, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		byID:   make(map[uuid.UUID]*Record),
	}
}

// WithClock replaces the tracker's clock. Intended for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Register adds a lien and derives its state.
func (t *Tracker) Register(reg Registration) (Record, error) {
	if !reg.AssetType.Valid() {
		return Record{}, fmt.Errorf("unknown asset type %q", reg.AssetType)
	}

	rec := &Record{
		ID:                uuid.New(),
		AssetType:         reg.AssetType,
		SeizureDate:       reg.SeizureDate,
		AssetDescription:  reg.AssetDescription,
		SaleRequested:     reg.SaleRequested,
		SaleRequestDate:   reg.SaleRequestDate,
		AdvancePaid:       reg.AdvancePaid,
		AdvancePaidAmount: reg.AdvancePaidAmount,
	}
	rec.Computed = Derive(*rec, t.now(), t.cfg)

	t.mu.Lock()
	t.records = append(t.records, rec)
	t.byID[rec.ID] = rec
	t.mu.Unlock()

	t.logger.Debug("deadline.registered",
		"lien_id", rec.ID,
		"asset_type", rec.AssetType,
		"status", rec.Computed.Status,
		"remaining_days", rec.Computed.RemainingDays,
	)
	return *rec, nil
}

// MarkSaleRequested records a sale request and re-derives the lien.
func (t *Tracker) MarkSaleRequested(id uuid.UUID, date *time.Time) (Record, error) {
	return t.mutate(id, func(rec *Record) {
		rec.SaleRequested = true
		rec.SaleRequestDate = date
	})
}

// MarkAdvancePaid records the sale advance payment and re-derives the lien.
func (t *Tracker) MarkAdvancePaid(id uuid.UUID, amount float64) (Record, error) {
	return t.mutate(id, func(rec *Record) {
		rec.AdvancePaid = true
		rec.AdvancePaidAmount = amount
	})
}

func (t *Tracker) mutate(id uuid.UUID, apply func(*Record)) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("lien %s not registered", id)
	}
	apply(rec)
	rec.Computed = Derive(*rec, t.now(), t.cfg)
	return *rec, nil
}

// Records returns a snapshot of every tracked lien in registration order.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	for i, rec := range t.records {
		out[i] = *rec
	}
	return out
}

// Report derives the batch summary. Unlimited-class liens never contribute
// to the required-advance total.
func (t *Tracker) Report() Report {
	report := Report{Counts: make(map[constants.LienStatus]int)}
	for _, rec := range t.Records() {
		report.Records = append(report.Records, rec)
		report.Counts[rec.Computed.Status]++
		if !rec.AssetType.IsUnlimited() && !rec.AdvancePaid {
			report.TotalRequiredAdvance += rec.Computed.RequiredAdvance
		}
	}
	return report
}
