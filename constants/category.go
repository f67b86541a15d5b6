package constants

import "strings"

// Category is the document class assigned by the classifier.
type Category string

const (
	PaymentOrder              Category = "PaymentOrder"
	ServiceReceiptDirect      Category = "ServiceReceiptDirect"      // tebliğ mazbatası, muhataba tebliğ
	ServiceReceiptSubstituted Category = "ServiceReceiptSubstituted" // TK 21/2, muhtara tebliğ
	ServiceReceiptAddressDB   Category = "ServiceReceiptAddressDB"   // MERNİS adresine tebliğ
	ServiceReceiptRegistry    Category = "ServiceReceiptRegistry"    // ticaret sicil adresine tebliğ
	GarnishmentNoticeFirst    Category = "GarnishmentNoticeFirst"    // 89/1 ihbarname
	GarnishmentNoticeSecond   Category = "GarnishmentNoticeSecond"   // 89/2 ihbarname
	GarnishmentNoticeThird    Category = "GarnishmentNoticeThird"    // 89/3 ihbarname
	SeizureMinutes            Category = "SeizureMinutes"
	ValuationReport           Category = "ValuationReport"
	SaleInvitation            Category = "SaleInvitation"
	SaleAnnouncement          Category = "SaleAnnouncement"
	CourtCorrespondence       Category = "CourtCorrespondence"
	CategoryUnknown           Category = "Unknown"
)

var allCategories = []Category{
	PaymentOrder,
	ServiceReceiptDirect,
	ServiceReceiptSubstituted,
	ServiceReceiptAddressDB,
	ServiceReceiptRegistry,
	GarnishmentNoticeFirst,
	GarnishmentNoticeSecond,
	GarnishmentNoticeThird,
	SeizureMinutes,
	ValuationReport,
	SaleInvitation,
	SaleAnnouncement,
	CourtCorrespondence,
	CategoryUnknown,
}

// Categories returns every known category as strings, Unknown last.
func Categories() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps a free-form label onto a known category.
// Unrecognized input resolves to Unknown.
func CanonicalizeCategory(input string) (Category, bool) {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return CategoryUnknown, false
	}
	for _, cat := range allCategories {
		if strings.EqualFold(normalized, string(cat)) {
			return cat, true
		}
	}
	return CategoryUnknown, false
}

// IsGarnishmentNotice reports whether the category is one of the 89/x tiers.
func IsGarnishmentNotice(c Category) bool {
	switch c {
	case GarnishmentNoticeFirst, GarnishmentNoticeSecond, GarnishmentNoticeThird:
		return true
	}
	return false
}

// NoticeTierOf returns the notice tier encoded in a garnishment category.
func NoticeTierOf(c Category) NoticeTier {
	switch c {
	case GarnishmentNoticeFirst:
		return TierFirst
	case GarnishmentNoticeSecond:
		return TierSecond
	case GarnishmentNoticeThird:
		return TierThird
	default:
		return TierUnknown
	}
}
