package garnishee

import "github.com/tkaraca/icra-analiz/constants"

// RecommendAction resolves the next procedural step from the notice tier
// and response status. The table is exhaustive over ResponseStatus; any
// unlisted combination resolves to manual review.
func RecommendAction(tier constants.NoticeTier, status constants.ResponseStatus) string {
	switch status {
	case constants.StatusFundsBlocked:
		return "Bloke edilen tutarın icra dosyasına aktarılması talep edilmeli"

	case constants.StatusAccountNotFound:
		if tier == constants.TierFirst {
			return "Bu muhatap için ikinci ihbarname gereksiz; kayıt bulunamadı"
		}
		return "Bu muhatapta varlık yok; diğer muhataplara yoğunlaşılmalı"

	case constants.StatusAccountExistsNoBalance:
		switch tier {
		case constants.TierFirst:
			return "89/2 ikinci haciz ihbarnamesi gönderilmeli"
		case constants.TierSecond:
			return "89/3 üçüncü (son) haciz ihbarnamesi gönderilmeli"
		default:
			return "İhbarname süreci tamamlandı; dosya kapatma değerlendirilmeli"
		}

	case constants.StatusNoResponseYet:
		switch tier {
		case constants.TierFirst:
			return "Cevap süresi doldu; 89/2 ikinci haciz ihbarnamesi gönderilmeli"
		case constants.TierSecond:
			return "Cevap süresi doldu; 89/3 üçüncü haciz ihbarnamesi gönderilmeli"
		default:
			return "Muhatabın cevabı beklenmeli"
		}

	case constants.StatusObjected:
		return "İtirazın kaldırılması için icra mahkemesine başvuru değerlendirilmeli"
	}

	// Unparseable, PartiallyBlocked and anything new.
	return "Cevap metni elle incelenmeli"
}
