package constants

// AssetType identifies what a lien was placed on. The time-limited class is
// subject to the statutory sale period; the unlimited class (claims and wage
// garnishments) never lapses.
type AssetType string

const (
	// Time-limited: a sale must be requested within the statutory period.
	AssetRealProperty   AssetType = "REAL_PROPERTY"
	AssetVehicleEconomy AssetType = "VEHICLE_ECONOMY"
	AssetVehicleMid     AssetType = "VEHICLE_MID"
	AssetVehicleHeavy   AssetType = "VEHICLE_HEAVY"
	AssetOtherMovable   AssetType = "OTHER_MOVABLE"

	// Unlimited: claim-type liens, no sale period applies.
	AssetBankAccountClaim   AssetType = "BANK_ACCOUNT_CLAIM"
	AssetLegalEntityClaim   AssetType = "LEGAL_ENTITY_CLAIM"
	AssetNaturalPersonClaim AssetType = "NATURAL_PERSON_CLAIM"
	AssetPublicBodyClaim    AssetType = "PUBLIC_BODY_CLAIM"
	AssetWageGarnishment    AssetType = "WAGE_GARNISHMENT"
)

// TimeLimitedAssetTypes lists the subtypes that carry a sale deadline, in
// tariff order.
var TimeLimitedAssetTypes = []AssetType{
	AssetRealProperty,
	AssetVehicleEconomy,
	AssetVehicleMid,
	AssetVehicleHeavy,
	AssetOtherMovable,
}

// IsUnlimited reports whether the asset type belongs to the unlimited class.
// The deadline tracker relies on this partition being exhaustive.
func (a AssetType) IsUnlimited() bool {
	switch a {
	case AssetBankAccountClaim, AssetLegalEntityClaim, AssetNaturalPersonClaim,
		AssetPublicBodyClaim, AssetWageGarnishment:
		return true
	}
	return false
}

// Valid reports whether a is a known asset type.
func (a AssetType) Valid() bool {
	if a.IsUnlimited() {
		return true
	}
	for _, t := range TimeLimitedAssetTypes {
		if a == t {
			return true
		}
	}
	return false
}
