package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCategory(t *testing.T) {
	cat, ok := CanonicalizeCategory("garnishmentnoticesecond")
	assert.True(t, ok)
	assert.Equal(t, GarnishmentNoticeSecond, cat)

	cat, ok = CanonicalizeCategory(" PaymentOrder ")
	assert.True(t, ok)
	assert.Equal(t, PaymentOrder, cat)

	cat, ok = CanonicalizeCategory("NoSuchThing")
	assert.False(t, ok)
	assert.Equal(t, CategoryUnknown, cat)

	_, ok = CanonicalizeCategory("")
	assert.False(t, ok)
}

func TestNoticeTierHelpers(t *testing.T) {
	assert.True(t, IsGarnishmentNotice(GarnishmentNoticeFirst))
	assert.True(t, IsGarnishmentNotice(GarnishmentNoticeThird))
	assert.False(t, IsGarnishmentNotice(PaymentOrder))

	assert.Equal(t, TierSecond, NoticeTierOf(GarnishmentNoticeSecond))
	assert.Equal(t, TierUnknown, NoticeTierOf(SeizureMinutes))

	assert.Equal(t, TierSecond, TierFirst.Next())
	assert.Equal(t, TierThird, TierSecond.Next())
	assert.Equal(t, TierUnknown, TierThird.Next())
}

func TestAssetTypePartition(t *testing.T) {
	for _, asset := range TimeLimitedAssetTypes {
		assert.True(t, asset.Valid())
		assert.False(t, asset.IsUnlimited())
	}
	assert.True(t, AssetWageGarnishment.IsUnlimited())
	assert.True(t, AssetBankAccountClaim.Valid())
	assert.False(t, AssetType("SPACESHIP").Valid())
}
