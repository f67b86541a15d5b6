package garnishee

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/common"
	"github.com/tkaraca/icra-analiz/internal/rules"
	"github.com/tkaraca/icra-analiz/internal/textutil"
)

type aliasEntry struct {
	name    string
	kind    constants.CounterpartyKind
	aliases []string
}

// tierTokens are statutory, not configuration: the İİK 89 stages and their
// spelled-out variants. Order matters, 89/2 and 89/3 before the bare 89/1
// fallback forms. A bare "haciz ihbarname" with no stage marker reads as a
// first notice: follow-up notices are invariably labeled with their stage,
// the initial one often is not.
var tierTokens = []struct {
	tier   constants.NoticeTier
	tokens []string
}{
	{constants.TierSecond, []string{"89/2", "89-2", "ikinci haciz ihbarname"}},
	{constants.TierThird, []string{"89/3", "89-3", "ucuncu haciz ihbarname"}},
	{constants.TierFirst, []string{"89/1", "89-1", "birinci haciz ihbarname", "haciz ihbarname"}},
}

// Parser turns a garnishee answer into a Response. Stateless after
// construction; Parse is safe for concurrent use.
type Parser struct {
	logger        *slog.Logger
	aliases       []aliasEntry
	blockPatterns []*regexp.Regexp
	blockKeywords []string
	noAccount     []string
	noBalance     []string
	objection     []string
	maxPlausible  float64
	dateWindow    textutil.DateWindow
}

// NewParser compiles the injected alias map and pattern lists.
func NewParser(cfg *rules.Config, logger *slog.Logger) (*Parser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	aliases := make([]aliasEntry, 0, len(cfg.Counterparties))
	for _, cp := range cfg.Counterparties {
		entry := aliasEntry{name: cp.Name, kind: cp.Kind}
		for _, a := range cp.Aliases {
			if n := textutil.Normalize(a); n != "" {
				entry.aliases = append(entry.aliases, n)
			}
		}
		aliases = append(aliases, entry)
	}

	patterns := make([]*regexp.Regexp, 0, len(cfg.BlockPatterns))
	for _, raw := range cfg.BlockPatterns {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, common.ConfigError(fmt.Sprintf("block pattern %q", raw), err)
		}
		patterns = append(patterns, re)
	}

	now := time.Now()
	return &Parser{
		logger:        logger,
		aliases:       aliases,
		blockPatterns: patterns,
		blockKeywords: normalizeList(cfg.BlockKeywords),
		noAccount:     normalizeList(cfg.NoAccountPhrases),
		noBalance:     normalizeList(cfg.NoBalancePhrases),
		objection:     normalizeList(cfg.ObjectionPhrases),
		maxPlausible:  cfg.MaxPlausibleAmount,
		dateWindow: textutil.DateWindow{
			MinYear: now.Year() - cfg.DateYearsBack,
			MaxYear: now.Year() + cfg.DateYearsAhead,
		},
	}, nil
}

// Parse extracts structured facts from a notice answer. The status branches
// run in strict priority order; the first satisfied branch wins. IBANs and
// the response date are extracted regardless of the branch taken.
func (p *Parser) Parse(text, filename string) Response {
	normalized := textutil.Normalize(text)
	normalizedWithName := textutil.Normalize(filename) + " " + normalized

	resp := Response{
		CounterpartyName: "Unknown",
		CounterpartyKind: constants.KindLegalEntity,
		NoticeTier:       constants.TierUnknown,
		SourceFile:       filename,
		SourceText:       text,
	}

	// 1. Counterparty: first alias hit across filename+text wins.
	for _, entry := range p.aliases {
		if textutil.ContainsAny(normalizedWithName, entry.aliases) {
			resp.CounterpartyName = entry.name
			resp.CounterpartyKind = entry.kind
			break
		}
	}

	// 2. Notice tier.
	for _, tt := range tierTokens {
		if textutil.ContainsAny(normalizedWithName, tt.tokens) {
			resp.NoticeTier = tt.tier
			break
		}
	}

	// 3..7. Status waterfall.
	p.resolveStatus(&resp, normalized)

	// Unconditional fact extraction.
	resp.AccountIdentifiers = textutil.FindIBANs(text)
	if date, ok := textutil.FindDate(text, p.dateWindow); ok {
		resp.ResponseDate = &date
	}

	resp.RecommendedAction = RecommendAction(resp.NoticeTier, resp.Status)

	p.logger.Debug("garnishee.parsed",
		"file", filename,
		"counterparty", resp.CounterpartyName,
		"tier", resp.NoticeTier,
		"status", resp.Status,
	)
	return resp
}

func (p *Parser) resolveStatus(resp *Response, normalized string) {
	if strings.TrimSpace(normalized) == "" {
		resp.Status = constants.StatusNoResponseYet
		resp.Rationale = "Cevap metni boş; muhatabın yanıtı henüz dosyaya girmemiş"
		return
	}

	// Blocked funds: tight patterns first, then a capped loose scan when a
	// block keyword is present but the patterns extracted nothing.
	if amount, ok := textutil.FindFirstAmount(normalized, p.blockPatterns); ok {
		if textutil.ContainsAny(normalized, p.blockKeywords) {
			resp.Status = constants.StatusFundsBlocked
			resp.BlockedAmount = &amount
			resp.Rationale = fmt.Sprintf("Bloke ifadesi ve %.2f TL tutar tespit edildi", amount)
			return
		}
	}
	if textutil.ContainsAny(normalized, p.blockKeywords) {
		if amount, ok := textutil.FindLooseAmount(normalized, p.maxPlausible); ok {
			resp.Status = constants.StatusFundsBlocked
			resp.BlockedAmount = &amount
			resp.Rationale = fmt.Sprintf("Bloke ifadesi mevcut; serbest taramayla %.2f TL bulundu", amount)
			return
		}
	}

	if textutil.ContainsAny(normalized, p.noAccount) {
		resp.Status = constants.StatusAccountNotFound
		resp.Rationale = "Muhatap nezdinde hesap veya kayıt bulunamadığı bildirilmiş"
		return
	}

	if textutil.ContainsAny(normalized, p.noBalance) {
		zero := 0.0
		resp.Status = constants.StatusAccountExistsNoBalance
		resp.AccountBalance = &zero
		resp.Rationale = "Hesap mevcut ancak haczedilebilir bakiye bulunmuyor"
		return
	}

	if textutil.ContainsAny(normalized, p.objection) {
		resp.Status = constants.StatusObjected
		resp.Rationale = "Muhatap ihbarnameye itiraz etmiş"
		return
	}

	resp.Status = constants.StatusUnparseable
	resp.Rationale = "Cevap metni bilinen kalıpların hiçbiriyle eşleşmedi"
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if n := textutil.Normalize(item); n != "" {
			out = append(out, n)
		}
	}
	return out
}
