// Package pipeline wires extraction, classification, garnishee parsing and
// deadline tracking into one batch run. Per-document work is fanned out
// across workers; classification and parsing of one document never read
// another document's results, so the only merge points are the notice
// aggregation and the deadline report, both commutative.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/classifier"
	"github.com/tkaraca/icra-analiz/internal/deadline"
	"github.com/tkaraca/icra-analiz/internal/extract"
	"github.com/tkaraca/icra-analiz/internal/garnishee"
	"github.com/tkaraca/icra-analiz/internal/notice"
	"github.com/tkaraca/icra-analiz/internal/rules"
	"github.com/tkaraca/icra-analiz/internal/textutil"
)

// Processor runs batches. Safe for concurrent use; all mutable state lives
// in the per-batch values.
type Processor struct {
	logger     *slog.Logger
	cfg        *rules.Config
	classifier *classifier.Classifier
	parser     *garnishee.Parser
	workers    int
}

// NewProcessor compiles the engines from the injected rule-set.
func NewProcessor(cfg *rules.Config, workers int, logger *slog.Logger) (*Processor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	cls, err := classifier.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	parser, err := garnishee.NewParser(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Processor{
		logger:     logger,
		cfg:        cfg,
		classifier: cls,
		parser:     parser,
		workers:    workers,
	}, nil
}

// ProcessDirectory scans root and analyzes everything found there.
func (p *Processor) ProcessDirectory(ctx context.Context, root string) (*BatchResult, error) {
	docs, skipped, stats, err := extract.ScanDirectory(ctx, root, p.logger)
	if err != nil {
		return nil, err
	}
	result, err := p.ProcessDocuments(ctx, docs)
	if err != nil {
		return result, err
	}
	result.Skipped = append(result.Skipped, skipped...)
	result.Stats = stats
	return result, nil
}

// ProcessDocuments classifies and parses the given documents, then derives
// the batch-level notice summary and deadline report. Documents whose text
// came back empty are reported as skipped, not silently dropped. On
// cancellation the documents finished so far still produce a valid,
// mergeable result.
func (p *Processor) ProcessDocuments(ctx context.Context, docs []extract.Document) (*BatchResult, error) {
	batch := &BatchResult{BatchID: uuid.New()}
	start := time.Now()
	p.logger.Info("pipeline.start", "batch_id", batch.BatchID, "documents", len(docs))

	results := make([]*DocumentResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.processOne(doc)
			return nil
		})
	}
	runErr := g.Wait()

	for i, res := range results {
		if res == nil {
			// cancelled before this document was reached
			continue
		}
		if strings.TrimSpace(docs[i].RawText) == "" {
			batch.Skipped = append(batch.Skipped, extract.Skipped{
				Path:   docs[i].Path,
				Reason: "no text extracted",
			})
			continue
		}
		batch.Documents = append(batch.Documents, *res)
	}

	p.deriveBatch(batch)

	p.logger.Info("pipeline.done",
		"batch_id", batch.BatchID,
		"documents", len(batch.Documents),
		"skipped", len(batch.Skipped),
		"total_blocked", batch.Notices.TotalBlocked,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return batch, runErr
}

// processOne is the per-document unit of work: classify, and parse the
// garnishee answer when the document is an 89/x notice.
func (p *Processor) processOne(doc extract.Document) *DocumentResult {
	res := &DocumentResult{
		Document: doc,
		Category: p.classifier.Classify(doc.Filename, doc.RawText),
	}
	if constants.IsGarnishmentNotice(res.Category) {
		resp := p.parser.Parse(doc.RawText, doc.Filename)
		if resp.NoticeTier == constants.TierUnknown {
			resp.NoticeTier = constants.NoticeTierOf(res.Category)
			resp.RecommendedAction = garnishee.RecommendAction(resp.NoticeTier, resp.Status)
		}
		res.Response = &resp
	}
	return res
}

// deriveBatch runs the two merge-discipline reductions: notice aggregation
// and the deadline registry.
func (p *Processor) deriveBatch(batch *BatchResult) {
	agg := notice.NewAggregator()
	for _, resp := range batch.Responses() {
		agg.Add(resp)
	}
	batch.Notices = agg.Summarize()

	tracker := deadline.NewTracker(p.cfg, p.logger)

	// Seizure minutes register time-limited liens.
	for _, dr := range batch.Documents {
		if dr.Category != constants.SeizureMinutes {
			continue
		}
		if _, err := tracker.Register(p.lienFromMinutes(dr.Document)); err != nil {
			p.logger.Warn("pipeline.lien.register.failed", "file", dr.Document.Filename, "err", err)
		}
	}

	// Confirmed blocks are claim-type liens; the unlimited class.
	for party, tiers := range batch.Notices.PerCounterparty {
		for _, resp := range tiers {
			if !resp.HasFunds() {
				continue
			}
			reg := deadline.Registration{
				AssetType:        claimAssetFor(resp.CounterpartyKind),
				SeizureDate:      resp.ResponseDate,
				AssetDescription: party + " nezdinde bloke edilen alacak",
			}
			if _, err := tracker.Register(reg); err != nil {
				p.logger.Warn("pipeline.lien.register.failed", "counterparty", party, "err", err)
			}
		}
	}

	batch.Deadlines = tracker.Report()
}

// lienFromMinutes derives a lien registration from a seizure-minutes
// document with light keyword heuristics. The asset defaults to an ordinary
// movable when nothing more specific is mentioned.
func (p *Processor) lienFromMinutes(doc extract.Document) deadline.Registration {
	normalized := textutil.Normalize(doc.RawText)

	asset := constants.AssetOtherMovable
	switch {
	case textutil.ContainsAny(normalized, []string{"tasinmaz", "gayrimenkul", "parsel", "mesken", "arsa"}):
		asset = constants.AssetRealProperty
	// No bare "tir" token: it is a substring of the ubiquitous "-tir"
	// verb suffix ("haczedilmistir").
	case textutil.ContainsAny(normalized, []string{"kamyon", "tir cekici", "cekici", "is makinesi"}):
		asset = constants.AssetVehicleHeavy
	case textutil.ContainsAny(normalized, []string{"minibus", "panelvan", "kamyonet"}):
		asset = constants.AssetVehicleMid
	case textutil.ContainsAny(normalized, []string{"arac", "otomobil", "plaka"}):
		asset = constants.AssetVehicleEconomy
	case textutil.ContainsAny(normalized, []string{"maas haczi", "ucret haczi"}):
		asset = constants.AssetWageGarnishment
	}

	reg := deadline.Registration{
		AssetType:        asset,
		AssetDescription: doc.Filename,
		SaleRequested:    textutil.ContainsAny(normalized, []string{"satis talep", "satis istendi"}),
		AdvancePaid:      textutil.ContainsAny(normalized, []string{"avans yatirildi", "avans odendi", "avans alindi"}),
	}
	window := textutil.DateWindow{
		MinYear: time.Now().Year() - p.cfg.DateYearsBack,
		MaxYear: time.Now().Year() + p.cfg.DateYearsAhead,
	}
	if date, ok := textutil.FindDate(doc.RawText, window); ok {
		reg.SeizureDate = &date
	}
	return reg
}

func claimAssetFor(kind constants.CounterpartyKind) constants.AssetType {
	switch kind {
	case constants.KindBank:
		return constants.AssetBankAccountClaim
	case constants.KindNaturalPerson:
		return constants.AssetNaturalPersonClaim
	case constants.KindPublicBody:
		return constants.AssetPublicBodyClaim
	default:
		return constants.AssetLegalEntityClaim
	}
}
