// Package export renders a batch result for humans: an XLSX workbook with
// one sheet per intelligence product, and a JSON dump for machines. The
// engines never depend on this package.
package export

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/pipeline"
)

// Service produces report artifacts from a batch result.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX returns the batch report as an XLSX workbook (as bytes).
func (s *Service) WriteXLSX(batch *pipeline.BatchResult) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()

	if err := s.writeDocumentsSheet(f, batch); err != nil {
		return nil, err
	}
	if err := s.writeResponsesSheet(f, batch); err != nil {
		return nil, err
	}
	if err := s.writeGapsSheet(f, batch); err != nil {
		return nil, err
	}
	if err := s.writeLiensSheet(f, batch); err != nil {
		return nil, err
	}
	if err := s.writeSummarySheet(f, batch); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batch.BatchID.String(),
		"documents", len(batch.Documents),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func (s *Service) writeDocumentsSheet(f *excelize.File, batch *pipeline.BatchResult) error {
	const sheet = "Belgeler"
	if err := newSheet(f, sheet, []string{"Dosya", "Tür", "Kategori"}); err != nil {
		return err
	}
	row := 2
	for _, dr := range batch.Documents {
		writeRow(f, sheet, row, []any{dr.Document.Filename, string(dr.Document.Format), string(dr.Category)})
		row++
	}
	for _, sk := range batch.Skipped {
		writeRow(f, sheet, row, []any{sk.Path, "-", "ATLANDI: " + sk.Reason})
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 48)
	_ = f.SetColWidth(sheet, "B", "C", 26)
	return nil
}

func (s *Service) writeResponsesSheet(f *excelize.File, batch *pipeline.BatchResult) error {
	const sheet = "89 İhbarnameleri"
	headers := []string{"Muhatap", "Tür", "Aşama", "Durum", "Bloke (TL)", "IBAN", "Cevap Tarihi", "Önerilen İşlem"}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	row := 2
	for _, resp := range batch.Responses() {
		blocked := ""
		if resp.BlockedAmount != nil {
			blocked = fmt.Sprintf("%.2f", *resp.BlockedAmount)
		}
		date := ""
		if resp.ResponseDate != nil {
			date = resp.ResponseDate.Format("02.01.2006")
		}
		ibans := ""
		for i, iban := range resp.AccountIdentifiers {
			if i > 0 {
				ibans += ", "
			}
			ibans += iban
		}
		writeRow(f, sheet, row, []any{
			resp.CounterpartyName,
			string(resp.CounterpartyKind),
			string(resp.NoticeTier),
			string(resp.Status),
			blocked,
			ibans,
			date,
			resp.RecommendedAction,
		})
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "F", "F", 32)
	_ = f.SetColWidth(sheet, "H", "H", 60)
	return nil
}

func (s *Service) writeGapsSheet(f *excelize.File, batch *pipeline.BatchResult) error {
	const sheet = "Eksik İhbarnameler"
	if err := newSheet(f, sheet, []string{"Muhatap", "Gönderilecek", "Gerekçe"}); err != nil {
		return err
	}
	row := 2
	for _, gap := range batch.Notices.MissingNotices {
		writeRow(f, sheet, row, []any{gap.Counterparty, string(gap.TierToSend), string(gap.ReasonStatus)})
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "C", 28)
	return nil
}

func (s *Service) writeLiensSheet(f *excelize.File, batch *pipeline.BatchResult) error {
	const sheet = "Haciz Süreleri"
	headers := []string{"Varlık", "Tür", "Haciz Tarihi", "Son Gün", "Kalan Gün", "Durum", "Gerekli Avans (TL)", "Açıklama"}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	row := 2
	for _, rec := range batch.Deadlines.Records {
		seized, due, remaining := "", "", ""
		if rec.SeizureDate != nil {
			seized = rec.SeizureDate.Format("02.01.2006")
		}
		if rec.Computed.DeadlineDate != nil {
			due = rec.Computed.DeadlineDate.Format("02.01.2006")
		}
		if rec.Computed.Status != constants.LienUnlimited {
			remaining = fmt.Sprintf("%d", rec.Computed.RemainingDays)
		}
		writeRow(f, sheet, row, []any{
			rec.AssetDescription,
			string(rec.AssetType),
			seized,
			due,
			remaining,
			string(rec.Computed.Status),
			fmt.Sprintf("%.2f", rec.Computed.RequiredAdvance),
			rec.Computed.Explanation,
		})
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 42)
	_ = f.SetColWidth(sheet, "H", "H", 70)
	return nil
}

func (s *Service) writeSummarySheet(f *excelize.File, batch *pipeline.BatchResult) error {
	const sheet = "Özet"
	if err := newSheet(f, sheet, []string{"Kalem", "Değer"}); err != nil {
		return err
	}
	row := 2
	put := func(k string, v any) {
		writeRow(f, sheet, row, []any{k, v})
		row++
	}

	put("Toplam belge", len(batch.Documents))
	put("Atlanan belge", len(batch.Skipped))
	put("Toplam bloke (TL)", fmt.Sprintf("%.2f", batch.Notices.TotalBlocked))
	put("Eksik ihbarname", len(batch.Notices.MissingNotices))
	put("Gerekli satış avansı (TL)", fmt.Sprintf("%.2f", batch.Deadlines.TotalRequiredAdvance))
	statuses := make([]string, 0, len(batch.Deadlines.Counts))
	for status := range batch.Deadlines.Counts {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		put("Haciz durumu "+status, batch.Deadlines.Counts[constants.LienStatus(status)])
	}
	for _, warning := range batch.Notices.CriticalWarnings {
		put("UYARI", warning)
	}
	_ = f.SetColWidth(sheet, "A", "A", 34)
	_ = f.SetColWidth(sheet, "B", "B", 80)
	return nil
}
