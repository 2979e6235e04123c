package classifier

import "strings"

// Standard account names produced by the default rules.
const (
	CashBankAccount  = "Cash/Bank A/c"
	SalesAccount     = "Sales A/c"
	PurchasesAccount = "Purchases A/c"
	DebtorAccount    = "Debtor A/c"
	CreditorAccount  = "Creditor A/c"
)

// Template names the two accounts a matched narration posts to.
type Template struct {
	DebitAccount  string `yaml:"debit"`
	CreditAccount string `yaml:"credit"`
}

// Rule maps a set of narration keywords to a posting template.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Template Template `yaml:"template"`
}

// Matches reports whether the lower-cased narration contains any of the rule's keywords.
func (r Rule) Matches(lowerNarration string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lowerNarration, kw) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in rule table in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "sale",
			Keywords: []string{"sold", "sale"},
			Template: Template{DebitAccount: CashBankAccount, CreditAccount: SalesAccount},
		},
		{
			Name:     "purchase",
			Keywords: []string{"purchased", "bought"},
			Template: Template{DebitAccount: PurchasesAccount, CreditAccount: CashBankAccount},
		},
		{
			Name:     "receipt",
			Keywords: []string{"received"},
			Template: Template{DebitAccount: CashBankAccount, CreditAccount: DebtorAccount},
		},
		{
			Name:     "payment",
			Keywords: []string{"paid"},
			Template: Template{DebitAccount: CreditorAccount, CreditAccount: CashBankAccount},
		},
	}
}

// hinglishKeywords extends the default rules by name.
var hinglishKeywords = map[string][]string{
	"sale":     {"becha"},
	"purchase": {"khareeda"},
	"receipt":  {"prapt"},
	"payment":  {"diya"},
}

// WithHinglish returns a copy of rules with the Hinglish keywords appended to the
// matching default rules. Priority order is unchanged.
func WithHinglish(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		kws := append([]string(nil), r.Keywords...)
		kws = append(kws, hinglishKeywords[r.Name]...)
		r.Keywords = kws
		out[i] = r
	}
	return out
}
