package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	cfg, err := rules.Default()
	require.NoError(t, err)
	c, err := New(cfg, nil)
	require.NoError(t, err)
	return c
}

func TestClassify(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name     string
		filename string
		text     string
		want     constants.Category
	}{
		{
			name: "second notice beats generic notice rule",
			text: "89-2 haciz ihbarnamesi ekte gönderilmiştir",
			want: constants.GarnishmentNoticeSecond,
		},
		{
			name: "spelled out third notice",
			text: "Üçüncü haciz ihbarnamesine cevaben",
			want: constants.GarnishmentNoticeThird,
		},
		{
			name: "bare notice falls to first tier",
			text: "Haciz ihbarnamesi tebliğ edilmiştir",
			want: constants.GarnishmentNoticeFirst,
		},
		{
			name:     "filename alone is enough",
			filename: "ÖDEME EMRİ örnek 2024.pdf",
			want:     constants.PaymentOrder,
		},
		{
			name: "valuation report",
			text: "Kıymet takdir raporu bilirkişi tarafından düzenlenmiştir",
			want: constants.ValuationReport,
		},
		{
			name: "sale announcement",
			text: "Açık artırma suretiyle satış ilanı",
			want: constants.SaleAnnouncement,
		},
		{
			name: "sale request",
			text: "Satış talebi ve satış avansı hakkında",
			want: constants.SaleInvitation,
		},
		{
			name: "seizure minutes",
			text: "Fiili haciz sırasında düzenlenen haciz tutanağı",
			want: constants.SeizureMinutes,
		},
		{
			name: "mernis service beats plain service receipt",
			text: "Tebligat mazbatası MERNİS adresine çıkarılmıştır",
			want: constants.ServiceReceiptAddressDB,
		},
		{
			name: "registry service",
			text: "Ticaret sicil adresine tebligat yapılmıştır",
			want: constants.ServiceReceiptRegistry,
		},
		{
			name: "substituted service",
			text: "TK 21/2 uyarınca muhtara tebliğ edilmiştir",
			want: constants.ServiceReceiptSubstituted,
		},
		{
			name: "plain service receipt",
			text: "Tebliğ mazbatası iade edilmiştir",
			want: constants.ServiceReceiptDirect,
		},
		{
			name: "court correspondence",
			text: "Asliye Hukuk Mahkemesi müzekkere cevabı",
			want: constants.CourtCorrespondence,
		},
		{
			name: "nothing matches",
			text: "Dosya masraf listesi ektedir",
			want: constants.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.filename, tt.text))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newClassifier(t)

	// A text matching several rules must always resolve to the first one.
	text := "89/2 ihbarname ile birlikte ödeme emri ve tebligat"
	first := c.Classify("", text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("", text))
	}
	assert.Equal(t, constants.GarnishmentNoticeSecond, first)
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	cfg, err := rules.Default()
	require.NoError(t, err)
	cfg.ClassifierRules = append(cfg.ClassifierRules, rules.ClassifierRule{
		Name:     "bad",
		Category: "NoSuchCategory",
		Any:      []string{"x"},
	})

	_, err = New(cfg, nil)
	require.Error(t, err)
}
