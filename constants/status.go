package constants

// ResponseStatus is the canonical outcome of a garnishee's answer to an
// 89/x notice. Stable values; these exact strings appear in exports.
type ResponseStatus string

const (
	StatusFundsBlocked           ResponseStatus = "FUNDS_BLOCKED"             // bloke konuldu
	StatusAccountExistsNoBalance ResponseStatus = "ACCOUNT_EXISTS_NO_BALANCE" // hesap var, bakiye yok
	StatusAccountNotFound        ResponseStatus = "ACCOUNT_NOT_FOUND"         // hesap/kayıt bulunamadı
	StatusObjected               ResponseStatus = "OBJECTED"                  // ihbarnameye itiraz edildi
	StatusPartiallyBlocked       ResponseStatus = "PARTIALLY_BLOCKED"         // kısmi bloke
	StatusNoResponseYet          ResponseStatus = "NO_RESPONSE_YET"           // cevap süresi içinde bekleniyor
	StatusUnparseable            ResponseStatus = "UNPARSEABLE"               // metin çözümlenemedi
)

// NoticeTier is the escalation stage of a garnishment notice (İİK 89).
type NoticeTier string

const (
	TierFirst   NoticeTier = "89/1"
	TierSecond  NoticeTier = "89/2"
	TierThird   NoticeTier = "89/3"
	TierUnknown NoticeTier = "UNKNOWN"
)

// Next returns the tier a follow-up notice would carry, or TierUnknown when
// there is no further escalation stage.
func (t NoticeTier) Next() NoticeTier {
	switch t {
	case TierFirst:
		return TierSecond
	case TierSecond:
		return TierThird
	}
	return TierUnknown
}

// CounterpartyKind classifies the party a notice was served on.
type CounterpartyKind string

const (
	KindBank          CounterpartyKind = "BANK"
	KindLegalEntity   CounterpartyKind = "LEGAL_ENTITY"
	KindNaturalPerson CounterpartyKind = "NATURAL_PERSON"
	KindPublicBody    CounterpartyKind = "PUBLIC_BODY"
)

// LienStatus is the derived state of a seizure with respect to the
// statutory sale period.
type LienStatus string

const (
	LienActive                      LienStatus = "ACTIVE"
	LienWarning                     LienStatus = "WARNING"  // within the warning threshold
	LienCritical                    LienStatus = "CRITICAL" // within the critical threshold
	LienSaleRequestedAdvancePaid    LienStatus = "SALE_REQUESTED_ADVANCE_PAID"
	LienSaleRequestedAdvanceMissing LienStatus = "SALE_REQUESTED_ADVANCE_MISSING"
	LienLapsed                      LienStatus = "LAPSED"
	LienUnlimited                   LienStatus = "UNLIMITED"
)
