package textutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  float64
		ok    bool
	}{
		{name: "grouped with decimals", token: "45.678,90", want: 45678.90, ok: true},
		{name: "bare thousands group", token: "4.000", want: 4000, ok: true},
		{name: "millions", token: "1.234.567,89", want: 1234567.89, ok: true},
		{name: "plain integer", token: "500", want: 500, ok: true},
		{name: "comma decimals only", token: "45,90", want: 45.90, ok: true},
		{name: "currency suffix", token: "1.250,00 TL", want: 1250, ok: true},
		{name: "lira sign", token: "750 ₺", want: 750, ok: true},
		{name: "machine format", token: "45678.90", want: 45678.90, ok: true},
		{name: "trailing separator", token: "4.000,", want: 4000, ok: true},
		{name: "empty", token: "", ok: false},
		{name: "no digits", token: "TL", ok: false},
		{name: "mixed garbage", token: "12,34,56.7", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCurrency(tt.token)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestFindFirstAmountPriorityOrder(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`bloke edil\w*[^0-9]*(\d[\d.,]*)\s*tl`),
		regexp.MustCompile(`(\d[\d.,]*)\s*tl[^.]*bloke`),
	}

	// Both patterns could match different numbers; the first pattern wins.
	text := "dosya borcu 99.000,00 tl olup hesapta bloke edilen 45.678,90 tl bloke altindadir"
	got, ok := FindFirstAmount(text, patterns)
	require.True(t, ok)
	assert.InDelta(t, 45678.90, got, 0.001)
}

func TestFindFirstAmountGenericFallback(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`bloke edil\w*[^0-9]*(\d[\d.,]*)\s*tl`),
	}

	got, ok := FindFirstAmount("hesap bakiyesi 1.250,75 TL olarak bildirilmistir", patterns)
	require.True(t, ok)
	assert.InDelta(t, 1250.75, got, 0.001)

	_, ok = FindFirstAmount("hicbir tutar gecmeyen metin", patterns)
	assert.False(t, ok)
}

func TestFindLooseAmountCap(t *testing.T) {
	// Case numbers above the cap must not be mistaken for money.
	got, ok := FindLooseAmount("2024/123456789 esas sayili dosyada 2.500,00 bloke", 10_000_000)
	require.True(t, ok)
	assert.InDelta(t, 2500, got, 0.001)

	_, ok = FindLooseAmount("esas sayisi 123456789 olan dosya", 10_000_000)
	assert.False(t, ok)
}

func TestFindLooseAmountIgnoresDateTokens(t *testing.T) {
	// A date next to the keyword is not money; its year must not surface.
	_, ok := FindLooseAmount("15.06.2024 tarihinde bloke konulmustur", 10_000_000)
	assert.False(t, ok)

	// A real amount alongside a date still wins.
	got, ok := FindLooseAmount("15.06.2024 tarihinde 2.500,00 bloke konulmustur", 10_000_000)
	require.True(t, ok)
	assert.InDelta(t, 2500, got, 0.001)
}
