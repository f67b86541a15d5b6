package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/extract"
	"github.com/tkaraca/icra-analiz/internal/pipeline"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

func testBatch(t *testing.T) *pipeline.BatchResult {
	t.Helper()
	cfg, err := rules.Default()
	require.NoError(t, err)
	p, err := pipeline.NewProcessor(cfg, 2, nil)
	require.NoError(t, err)

	docs := []extract.Document{
		{
			Filename: "garanti_cevap.txt",
			Path:     "/case/garanti_cevap.txt",
			Format:   constants.FormatTXT,
			RawText:  "89/1 haciz ihbarnamesine cevaben: hesapta 45.678,90 TL bloke edilmiştir.",
		},
		{
			Filename: "akbank_cevap.txt",
			Path:     "/case/akbank_cevap.txt",
			Format:   constants.FormatTXT,
			RawText:  "89/1 ihbarnamenize cevaben bakiye bulunmamaktadır.",
		},
	}
	batch, err := p.ProcessDocuments(context.Background(), docs)
	require.NoError(t, err)
	return batch
}

func TestWriteXLSX(t *testing.T) {
	svc := NewService(nil)
	batch := testBatch(t)

	data, err := svc.WriteXLSX(batch)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Belgeler", "89 İhbarnameleri", "Eksik İhbarnameler", "Haciz Süreleri", "Özet"} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1")

	// Document rows.
	rows, err := f.GetRows("Belgeler")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Dosya", "Tür", "Kategori"}, rows[0])
	assert.Equal(t, "garanti_cevap.txt", rows[1][0])
	assert.Equal(t, "GarnishmentNoticeFirst", rows[1][2])

	// The blocked answer lands in the responses sheet with its amount.
	rows, err = f.GetRows("89 İhbarnameleri")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	var garanti []string
	for _, row := range rows[1:] {
		if row[0] == "Türkiye Garanti Bankası A.Ş." {
			garanti = row
		}
	}
	require.NotNil(t, garanti)
	assert.Equal(t, "89/1", garanti[2])
	assert.Equal(t, "FUNDS_BLOCKED", garanti[3])
	assert.Equal(t, "45678.90", garanti[4])

	// Akbank's no-balance answer on 89/1 wants a second notice.
	rows, err = f.GetRows("Eksik İhbarnameler")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Akbank T.A.Ş.", rows[1][0])
	assert.Equal(t, "89/2", rows[1][1])

	// The confirmed block became an unlimited claim lien.
	rows, err = f.GetRows("Haciz Süreleri")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BANK_ACCOUNT_CLAIM", rows[1][1])
	assert.Equal(t, "UNLIMITED", rows[1][5])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	svc := NewService(nil)
	batch := testBatch(t)

	data, err := svc.WriteJSON(batch)
	require.NoError(t, err)

	var decoded pipeline.BatchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, batch.BatchID, decoded.BatchID)
	assert.Len(t, decoded.Documents, 2)
	assert.InDelta(t, batch.Notices.TotalBlocked, decoded.Notices.TotalBlocked, 0.001)
	assert.Len(t, decoded.Notices.MissingNotices, 1)
}
