package scoring

import "leaddesk_backend/internal/leads/domain"

// Rules holds every dictionary and weight the scorer consults. Keeping the
// tables as data rather than control flow lets each rule group be exercised
// against swapped-in fixtures.
type Rules struct {
	// Base score - leads start at 50 and rule groups add/subtract from this.
	BaseScore int
	// Final scores are clamped to [MinScore, MaxScore].
	MinScore int
	MaxScore int

	// MissingFieldPenalty applies once per absent name, email or company.
	MissingFieldPenalty int

	// Status contribution per pipeline stage. Unknown stages contribute 0.
	StatusDeltas map[domain.Status]int

	// Email domain tiers, evaluated in this priority: exact top-tier match,
	// good TLD suffix, exact consumer match, generic business TLD suffix.
	TopTierDomains   []string
	GoodTLDs         []string
	ConsumerDomains  []string
	BusinessTLDs     []string
	TopTierBonus     int
	GoodTLDBonus     int
	ConsumerPenalty  int
	BusinessTLDBonus int

	// Mailbox-name analysis. Both checks are independent.
	GenericMailboxes      []string
	GenericMailboxPenalty int
	PersonalMailboxBonus  int

	// Company analysis.
	LegalSuffixes      []string
	LegalSuffixBonus   int
	LongNameMinLen     int
	LongNameBonus      int
	MediumNameMinLen   int
	MediumNameBonus    int
	ShortNameMaxLen    int
	ShortNamePenalty   int
	IndustryKeywords   []string
	IndustryBonus      int
	StartupKeywords    []string
	StartupBonus       int

	// Person-name analysis.
	MultiTokenNameBonus    int
	TitleKeywords          []string
	TitleBonus             int
	ShortPersonNameMaxLen  int
	ShortPersonNamePenalty int

	// Cross-field bonuses.
	CompletenessBonus        int
	ExecutiveTitles          []string
	EnterpriseDomains        []string
	EnterpriseExecutiveBonus int
}

// DefaultRules returns the production rule tables.
func DefaultRules() Rules {
	return Rules{
		BaseScore: 50,
		MinScore:  1,
		MaxScore:  100,

		MissingFieldPenalty: 10,

		StatusDeltas: map[domain.Status]int{
			domain.StatusNew:       0,
			domain.StatusContacted: 15,
			domain.StatusConverted: 30,
		},

		// Premium business domains (major corporations)
		TopTierDomains: []string{
			"microsoft.com",
			"apple.com",
			"google.com",
			"amazon.com",
			"ibm.com",
			"oracle.com",
			"salesforce.com",
			"adobe.com",
			"intel.com",
			"cisco.com",
			"dell.com",
			"hp.com",
		},

		// Educational, government and non-profit TLDs
		GoodTLDs: []string{".edu", ".gov", ".org", ".io"},

		// Consumer domains (generally lower value leads)
		ConsumerDomains: []string{
			"gmail.com",
			"hotmail.com",
			"yahoo.com",
			"outlook.com",
			"aol.com",
			"icloud.com",
			"mail.com",
			"protonmail.com",
		},

		BusinessTLDs: []string{".com", ".net", ".co"},

		TopTierBonus:     20,
		GoodTLDBonus:     10,
		ConsumerPenalty:  5,
		BusinessTLDBonus: 5,

		GenericMailboxes: []string{
			"info", "contact", "hello", "admin", "sales", "support", "help",
		},
		GenericMailboxPenalty: 5,
		PersonalMailboxBonus:  5,

		// Legal entity indicators suggest established businesses
		LegalSuffixes: []string{
			"inc", "llc", "ltd", "corp", "limited", "gmbh", "incorporated", "corporation",
		},
		LegalSuffixBonus: 8,

		LongNameMinLen:   21,
		LongNameBonus:    5,
		MediumNameMinLen: 13,
		MediumNameBonus:  3,
		ShortNameMaxLen:  3,
		ShortNamePenalty: 3,

		// Industries with higher average deal values
		IndustryKeywords: []string{
			"tech", "software", "finance", "financial", "invest", "capital",
			"health", "medical", "pharma", "insurance", "consulting",
			"enterprise", "solutions", "systems", "global",
		},
		IndustryBonus: 7,

		StartupKeywords: []string{
			"startup", "innovation", "technologies", "labs", "ai",
		},
		StartupBonus: 5,

		MultiTokenNameBonus: 5,

		// Titles that suggest decision-making authority
		TitleKeywords: []string{
			"ceo", "cto", "cfo", "coo", "president", "vp", "director",
			"head", "manager", "chief", "founder", "owner",
		},
		TitleBonus:             10,
		ShortPersonNameMaxLen:  4,
		ShortPersonNamePenalty: 3,

		CompletenessBonus: 5,

		ExecutiveTitles: []string{
			"ceo", "cto", "cfo", "coo", "president", "vp", "director",
		},
		EnterpriseDomains: []string{
			"microsoft.com", "apple.com", "google.com", "amazon.com",
		},
		EnterpriseExecutiveBonus: 15,
	}
}
