// Package scoring implements the deterministic rule-based lead quality score.
//
// The scorer is a pure function over a lead record and the static rule
// tables: no I/O, no shared mutable state, no clock. Each rule group
// contributes an independent signed delta on top of the base score, and the
// final result is clamped to the valid range. Identical input always produces
// an identical score, so the scorer may be called concurrently without
// coordination.
package scoring

import (
	"regexp"
	"strings"

	"leaddesk_backend/internal/leads/domain"
)

// personalMailboxPattern matches mailbox names shaped like
// "firstname.lastname" (letters, a dot, letters).
var personalMailboxPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+`)

// Scorer evaluates leads against a fixed rule set.
type Scorer struct {
	rules Rules
}

// NewScorer creates a scorer with the given rule tables. Use DefaultRules()
// for production behavior; tests may swap in fixture tables.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// Default returns a scorer backed by the production rule tables.
func Default() *Scorer {
	return NewScorer(DefaultRules())
}

// Score maps a lead record to a quality score within
// [rules.MinScore, rules.MaxScore].
func (s *Scorer) Score(rec domain.Record) int {
	score, _ := s.Explain(rec)
	return score
}

// Explain returns the score together with the per-group deltas that produced
// it. Groups contributing zero are omitted from the factor map.
func (s *Scorer) Explain(rec domain.Record) (int, map[string]int) {
	factors := map[string]int{}
	score := s.rules.BaseScore

	score += addFactor(factors, "status", s.statusDelta(rec))
	score += addFactor(factors, "email", s.emailDelta(rec))
	score += addFactor(factors, "company", s.companyDelta(rec))
	score += addFactor(factors, "name", s.nameDelta(rec))
	score += addFactor(factors, "completeness", s.completenessDelta(rec))
	score += addFactor(factors, "enterprise_executive", s.enterpriseComboDelta(rec))

	return s.clamp(score), factors
}

func addFactor(factors map[string]int, key string, delta int) int {
	if delta != 0 {
		factors[key] = delta
	}
	return delta
}

// statusDelta rewards pipeline progress. Unknown stages contribute nothing.
func (s *Scorer) statusDelta(rec domain.Record) int {
	return s.rules.StatusDeltas[rec.Status]
}

// emailDelta classifies the email domain into tiers (first matching tier
// wins) and analyzes the mailbox name. A missing email is penalized; a
// malformed one simply contributes nothing.
func (s *Scorer) emailDelta(rec domain.Record) int {
	email, ok := domain.Field(rec.Email)
	if !ok {
		return -s.rules.MissingFieldPenalty
	}

	local, emailDomain, wellFormed := splitEmail(email)
	if !wellFormed {
		return 0
	}

	delta := 0
	switch {
	case containsExact(s.rules.TopTierDomains, emailDomain):
		delta += s.rules.TopTierBonus
	case hasAnySuffix(emailDomain, s.rules.GoodTLDs):
		delta += s.rules.GoodTLDBonus
	case containsExact(s.rules.ConsumerDomains, emailDomain):
		delta -= s.rules.ConsumerPenalty
	case hasAnySuffix(emailDomain, s.rules.BusinessTLDs):
		delta += s.rules.BusinessTLDBonus
	}

	if containsExact(s.rules.GenericMailboxes, local) {
		delta -= s.rules.GenericMailboxPenalty
	}
	if personalMailboxPattern.MatchString(local) {
		delta += s.rules.PersonalMailboxBonus
	}

	return delta
}

// companyDelta looks for legal-entity suffixes, name length brackets and
// industry keywords. The length brackets are mutually exclusive; the keyword
// bonuses are independent and may stack.
func (s *Scorer) companyDelta(rec domain.Record) int {
	company, ok := domain.Field(rec.Company)
	if !ok {
		return -s.rules.MissingFieldPenalty
	}

	name := strings.ToLower(company)
	delta := 0

	if hasLegalSuffix(name, s.rules.LegalSuffixes) {
		delta += s.rules.LegalSuffixBonus
	}

	switch length := len(name); {
	case length >= s.rules.LongNameMinLen:
		delta += s.rules.LongNameBonus
	case length >= s.rules.MediumNameMinLen:
		delta += s.rules.MediumNameBonus
	case length <= s.rules.ShortNameMaxLen:
		delta -= s.rules.ShortNamePenalty
	}

	if containsAny(name, s.rules.IndustryKeywords) {
		delta += s.rules.IndustryBonus
	}
	if containsAny(name, s.rules.StartupKeywords) {
		delta += s.rules.StartupBonus
	}

	return delta
}

// nameDelta rewards full names and decision-maker titles.
func (s *Scorer) nameDelta(rec domain.Record) int {
	name, ok := domain.Field(rec.Name)
	if !ok {
		return -s.rules.MissingFieldPenalty
	}

	delta := 0

	if len(strings.Fields(name)) >= 2 {
		delta += s.rules.MultiTokenNameBonus
	}
	if containsAny(strings.ToLower(name), s.rules.TitleKeywords) {
		delta += s.rules.TitleBonus
	}
	if len(name) <= s.rules.ShortPersonNameMaxLen {
		delta -= s.rules.ShortPersonNamePenalty
	}

	return delta
}

// completenessDelta rewards fully populated records. A malformed-but-present
// email still counts toward completeness: the field was supplied, it just
// cannot earn domain bonuses.
func (s *Scorer) completenessDelta(rec domain.Record) int {
	if _, ok := domain.Field(rec.Name); !ok {
		return 0
	}
	if _, ok := domain.Field(rec.Email); !ok {
		return 0
	}
	if _, ok := domain.Field(rec.Company); !ok {
		return 0
	}
	if rec.Status == "" {
		return 0
	}
	return s.rules.CompletenessBonus
}

// enterpriseComboDelta grants the high-value-decision-maker bonus: an
// executive title in the name combined with a well-formed email on one of the
// major enterprise domains.
func (s *Scorer) enterpriseComboDelta(rec domain.Record) int {
	name, ok := domain.Field(rec.Name)
	if !ok {
		return 0
	}
	email, ok := domain.Field(rec.Email)
	if !ok {
		return 0
	}

	_, emailDomain, wellFormed := splitEmail(email)
	if !wellFormed {
		return 0
	}

	if containsAny(strings.ToLower(name), s.rules.ExecutiveTitles) &&
		containsExact(s.rules.EnterpriseDomains, emailDomain) {
		return s.rules.EnterpriseExecutiveBonus
	}
	return 0
}

func (s *Scorer) clamp(score int) int {
	if score < s.rules.MinScore {
		return s.rules.MinScore
	}
	if score > s.rules.MaxScore {
		return s.rules.MaxScore
	}
	return score
}

// splitEmail splits an address into lowercased mailbox name and domain.
// Well-formed means exactly one "@" with non-empty parts on both sides.
func splitEmail(email string) (local string, emailDomain string, wellFormed bool) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return strings.ToLower(parts[0]), strings.ToLower(parts[1]), true
}

// hasLegalSuffix reports whether the lowercased company name ends with a
// legal-entity suffix preceded by a space, dot or comma, or equals the suffix.
func hasLegalSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if name == suffix ||
			strings.HasSuffix(name, " "+suffix) ||
			strings.HasSuffix(name, "."+suffix) ||
			strings.HasSuffix(name, ","+suffix) {
			return true
		}
	}
	return false
}

// containsExact checks if s is an exact member of values.
func containsExact(values []string, s string) bool {
	for _, value := range values {
		if s == value {
			return true
		}
	}
	return false
}

// containsAny checks if s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// hasAnySuffix checks if s ends with any of the suffixes.
func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
