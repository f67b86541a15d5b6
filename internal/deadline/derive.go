package deadline

import (
	"fmt"
	"math"
	"time"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

// UnlimitedDays is the remaining-days sentinel for unlimited-class liens.
const UnlimitedDays = math.MaxInt32

// unlimitedExplanations carries a distinct human explanation per unlimited
// subtype.
var unlimitedExplanations = map[constants.AssetType]string{
	constants.AssetBankAccountClaim:   "Banka hesabı alacağı: bloke edilen tutar için satış süresi işlemez",
	constants.AssetLegalEntityClaim:   "Üçüncü kişi şirket nezdindeki alacak haczi süreye tabi değildir",
	constants.AssetNaturalPersonClaim: "Gerçek kişi nezdindeki alacak haczi süreye tabi değildir",
	constants.AssetPublicBodyClaim:    "Kamu kurumu nezdindeki hak ve alacak haczi süreye tabi değildir",
	constants.AssetWageGarnishment:    "Maaş haczi: kesinti devam ettiği sürece süre işlemez",
}

// Computed is the derived state of a lien. It is a pure function of the
// record's input fields, the clock and the injected deadline rules; it is
// never mutated independently.
type Computed struct {
	Status          constants.LienStatus `json:"status"`
	RemainingDays   int                  `json:"remaining_days"`
	DeadlineDate    *time.Time           `json:"deadline_date,omitempty"`
	RequiredAdvance float64              `json:"required_advance"`
	Explanation     string               `json:"explanation"`
}

// Derive computes a lien's state. The unlimited-class short-circuit is the
// one invariant this function must never violate: claim-type liens yield
// Unlimited regardless of every date and flag.
func Derive(rec Record, now time.Time, cfg *rules.Config) Computed {
	if rec.AssetType.IsUnlimited() {
		return Computed{
			Status:        constants.LienUnlimited,
			RemainingDays: UnlimitedDays,
			Explanation:   unlimitedExplanations[rec.AssetType],
		}
	}

	advance := cfg.AdvanceFor(rec.AssetType)

	if rec.SeizureDate == nil {
		// Registration arrived without a seizure date; the statutory window
		// has not started counting against anything we can verify.
		return Computed{
			Status:          constants.LienActive,
			RemainingDays:   cfg.Deadline.PeriodDays,
			RequiredAdvance: advance,
			Explanation:     "Haciz tarihi bilinmiyor; satış süresi hesaplanamadı, tutanak kontrol edilmeli",
		}
	}

	// Uniform one-year window for movables and immovables alike; only the
	// advance amount branches by subtype.
	deadline := dateOnly(*rec.SeizureDate).AddDate(0, 0, cfg.Deadline.PeriodDays)
	remaining := int(deadline.Sub(dateOnly(now)).Hours() / 24)

	c := Computed{
		RemainingDays:   remaining,
		DeadlineDate:    &deadline,
		RequiredAdvance: advance,
	}

	switch {
	case remaining < 0:
		if rec.SaleRequested && rec.AdvancePaid {
			c.Status = constants.LienSaleRequestedAdvancePaid
			c.Explanation = "Süre geçti ancak satış talebi ve avans süresinde verilmiş; satış süreci işliyor"
		} else {
			c.Status = constants.LienLapsed
			c.Explanation = fmt.Sprintf("Satış isteme süresi %d gün önce doldu; haciz düştü, yeniden haciz gerekir", -remaining)
		}
	case remaining <= cfg.Deadline.CriticalDays:
		c.Status, c.Explanation = splitByFlags(rec, remaining, advance, constants.LienCritical,
			fmt.Sprintf("Son %d gün: satış talebi ve %.2f TL avans derhal verilmeli", remaining, advance))
	case remaining <= cfg.Deadline.WarningDays:
		c.Status, c.Explanation = splitByFlags(rec, remaining, advance, constants.LienWarning,
			fmt.Sprintf("Satış isteme süresinin dolmasına %d gün kaldı; %.2f TL avans hazırlanmalı", remaining, advance))
	default:
		c.Status, c.Explanation = splitByFlags(rec, remaining, advance, constants.LienActive,
			fmt.Sprintf("Haciz aktif; satış isteme süresinin dolmasına %d gün var", remaining))
	}
	return c
}

// splitByFlags applies the sale/advance precedence shared by every
// non-lapsed bucket: both flags beat the bucket, a sale request without
// advance flags the missing payment, otherwise the bucket status stands.
func splitByFlags(rec Record, remaining int, advance float64, fallback constants.LienStatus, fallbackExpl string) (constants.LienStatus, string) {
	switch {
	case rec.SaleRequested && rec.AdvancePaid:
		return constants.LienSaleRequestedAdvancePaid,
			fmt.Sprintf("Satış talep edilmiş ve avans yatırılmış; kalan %d gün risksiz", remaining)
	case rec.SaleRequested:
		return constants.LienSaleRequestedAdvanceMissing,
			fmt.Sprintf("Satış talep edilmiş ancak %.2f TL avans eksik; talep hükümsüz kalabilir", advance)
	default:
		return fallback, fallbackExpl
	}
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
