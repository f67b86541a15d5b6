package deadline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

var testNow = time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	cfg, err := rules.Default()
	require.NoError(t, err)
	return NewTracker(cfg, nil).WithClock(func() time.Time { return testNow })
}

func daysAgo(n int) *time.Time {
	d := testNow.AddDate(0, 0, -n)
	return &d
}

func TestUnlimitedAssetsNeverLapse(t *testing.T) {
	tr := newTracker(t)

	unlimited := []constants.AssetType{
		constants.AssetBankAccountClaim,
		constants.AssetLegalEntityClaim,
		constants.AssetNaturalPersonClaim,
		constants.AssetPublicBodyClaim,
		constants.AssetWageGarnishment,
	}

	for _, asset := range unlimited {
		t.Run(string(asset), func(t *testing.T) {
			// Ancient seizure date and every flag set: still unlimited.
			rec, err := tr.Register(Registration{
				AssetType:     asset,
				SeizureDate:   daysAgo(2000),
				SaleRequested: true,
				AdvancePaid:   true,
			})
			require.NoError(t, err)
			assert.Equal(t, constants.LienUnlimited, rec.Computed.Status)
			assert.Equal(t, UnlimitedDays, rec.Computed.RemainingDays)
			assert.Nil(t, rec.Computed.DeadlineDate)
			assert.Zero(t, rec.Computed.RequiredAdvance)
			assert.NotEmpty(t, rec.Computed.Explanation)

			// Same invariant without any date.
			rec, err = tr.Register(Registration{AssetType: asset})
			require.NoError(t, err)
			assert.Equal(t, constants.LienUnlimited, rec.Computed.Status)
		})
	}
}

func TestLapsedSeizure(t *testing.T) {
	tr := newTracker(t)

	rec, err := tr.Register(Registration{
		AssetType:   constants.AssetVehicleEconomy,
		SeizureDate: daysAgo(400),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.LienLapsed, rec.Computed.Status)
	assert.Equal(t, -35, rec.Computed.RemainingDays)
	assert.Contains(t, rec.Computed.Explanation, "haciz düştü")
}

func TestLapsedButSaleRequestedInTime(t *testing.T) {
	tr := newTracker(t)

	rec, err := tr.Register(Registration{
		AssetType:     constants.AssetVehicleEconomy,
		SeizureDate:   daysAgo(400),
		SaleRequested: true,
		AdvancePaid:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.LienSaleRequestedAdvancePaid, rec.Computed.Status)
}

func TestSaleRequestedWithoutAdvance(t *testing.T) {
	tr := newTracker(t)

	rec, err := tr.Register(Registration{
		AssetType:     constants.AssetRealProperty,
		SeizureDate:   daysAgo(345), // 20 days left
		SaleRequested: true,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.LienSaleRequestedAdvanceMissing, rec.Computed.Status)
	assert.Equal(t, 20, rec.Computed.RemainingDays)
	assert.InDelta(t, 85000, rec.Computed.RequiredAdvance, 0.001)
	assert.Contains(t, rec.Computed.Explanation, "avans eksik")
}

func TestStatusBuckets(t *testing.T) {
	tr := newTracker(t)

	tests := []struct {
		name      string
		ageDays   int
		want      constants.LienStatus
		remaining int
	}{
		{name: "active", ageDays: 100, want: constants.LienActive, remaining: 265},
		{name: "warning at 90", ageDays: 275, want: constants.LienWarning, remaining: 90},
		{name: "critical at 30", ageDays: 335, want: constants.LienCritical, remaining: 30},
		{name: "critical at 1", ageDays: 364, want: constants.LienCritical, remaining: 1},
		{name: "last day", ageDays: 365, want: constants.LienCritical, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tr.Register(Registration{
				AssetType:   constants.AssetOtherMovable,
				SeizureDate: daysAgo(tt.ageDays),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Computed.Status)
			assert.Equal(t, tt.remaining, rec.Computed.RemainingDays)
		})
	}
}

func TestMissingSeizureDateStaysActive(t *testing.T) {
	tr := newTracker(t)

	rec, err := tr.Register(Registration{AssetType: constants.AssetVehicleHeavy})
	require.NoError(t, err)

	assert.Equal(t, constants.LienActive, rec.Computed.Status)
	assert.Equal(t, 365, rec.Computed.RemainingDays)
	assert.InDelta(t, 45000, rec.Computed.RequiredAdvance, 0.001)
	assert.Contains(t, rec.Computed.Explanation, "tutanak")
}

func TestRegisterRejectsUnknownAssetType(t *testing.T) {
	tr := newTracker(t)

	_, err := tr.Register(Registration{AssetType: "SPACESHIP"})
	require.Error(t, err)
}

func TestMutationsRederive(t *testing.T) {
	tr := newTracker(t)

	rec, err := tr.Register(Registration{
		AssetType:   constants.AssetVehicleMid,
		SeizureDate: daysAgo(340), // 25 days left
	})
	require.NoError(t, err)
	require.Equal(t, constants.LienCritical, rec.Computed.Status)

	rec, err = tr.MarkSaleRequested(rec.ID, daysAgo(1))
	require.NoError(t, err)
	assert.Equal(t, constants.LienSaleRequestedAdvanceMissing, rec.Computed.Status)

	rec, err = tr.MarkAdvancePaid(rec.ID, 30000)
	require.NoError(t, err)
	assert.Equal(t, constants.LienSaleRequestedAdvancePaid, rec.Computed.Status)
	assert.InDelta(t, 30000, rec.AdvancePaidAmount, 0.001)

	_, err = tr.MarkAdvancePaid(uuid.New(), 1)
	require.Error(t, err)
}

func TestReportTotals(t *testing.T) {
	tr := newTracker(t)

	_, err := tr.Register(Registration{
		AssetType:   constants.AssetRealProperty,
		SeizureDate: daysAgo(100),
	})
	require.NoError(t, err)

	paid, err := tr.Register(Registration{
		AssetType:     constants.AssetVehicleEconomy,
		SeizureDate:   daysAgo(100),
		SaleRequested: true,
		AdvancePaid:   true,
	})
	require.NoError(t, err)

	_, err = tr.Register(Registration{AssetType: constants.AssetBankAccountClaim})
	require.NoError(t, err)

	report := tr.Report()
	assert.Len(t, report.Records, 3)
	assert.Equal(t, 1, report.Counts[constants.LienActive])
	assert.Equal(t, 1, report.Counts[constants.LienSaleRequestedAdvancePaid])
	assert.Equal(t, 1, report.Counts[constants.LienUnlimited])
	// Only the unpaid real property lien still owes an advance.
	assert.InDelta(t, 85000, report.TotalRequiredAdvance, 0.001)
	assert.Equal(t, constants.LienSaleRequestedAdvancePaid, paid.Computed.Status)
}

func TestReportMergeCommutes(t *testing.T) {
	left := newTracker(t)
	right := newTracker(t)

	_, err := left.Register(Registration{
		AssetType:   constants.AssetRealProperty,
		SeizureDate: daysAgo(350),
	})
	require.NoError(t, err)
	_, err = right.Register(Registration{
		AssetType:   constants.AssetOtherMovable,
		SeizureDate: daysAgo(10),
	})
	require.NoError(t, err)
	_, err = right.Register(Registration{AssetType: constants.AssetWageGarnishment})
	require.NoError(t, err)

	lr := left.Report().Merge(right.Report())
	rl := right.Report().Merge(left.Report())

	assert.Equal(t, lr.Counts, rl.Counts)
	assert.InDelta(t, lr.TotalRequiredAdvance, rl.TotalRequiredAdvance, 0.001)
	assert.Len(t, lr.Records, 3)
	assert.Len(t, rl.Records, 3)
}
