// Package classifier turns free-text narrations into a suggested two-line journal entry
// using an ordered keyword rule table.
package classifier

import (
	"regexp"
	"strings"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Result is the outcome of classifying one narration.
type Result struct {
	Rule     string           // name of the matched rule, empty when nothing matched
	Amount   decimal.Decimal  // extracted amount, zero when no number was found
	Postings []domain.Posting // nil when nothing matched
}

// Matched reports whether a rule produced postings.
func (r Result) Matched() bool {
	return r.Rule != ""
}

// Classifier evaluates rules in order; the first matching rule wins.
type Classifier struct {
	rules []Rule
}

// New builds a classifier over rules. A nil or empty table falls back to DefaultRules.
func New(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kws = append(kws, strings.ToLower(strings.TrimSpace(kw)))
		}
		r.Keywords = kws
		normalized[i] = r
	}
	return &Classifier{rules: normalized}
}

// Rules returns a copy of the rule table in priority order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify returns the candidate postings for narration, or nil when no rule matches.
func (c *Classifier) Classify(narration string) []domain.Posting {
	return c.Explain(narration).Postings
}

// Explain is Classify with the matched rule and extracted amount attached.
func (c *Classifier) Explain(narration string) Result {
	amount := ExtractAmount(narration)
	lower := strings.ToLower(narration)

	for _, rule := range c.rules {
		if !rule.Matches(lower) {
			continue
		}
		return Result{
			Rule:   rule.Name,
			Amount: amount,
			Postings: []domain.Posting{
				domain.DebitPosting(rule.Template.DebitAccount, amount),
				domain.CreditPosting(rule.Template.CreditAccount, amount),
			},
		}
	}
	return Result{Amount: amount}
}

// ExtractAmount returns the first integer or decimal number in text, or zero.
// Digit grouping is not understood: "5,000" yields 5.
func ExtractAmount(text string) decimal.Decimal {
	token := amountPattern.FindString(text)
	if token == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
