// Package sms turns bank notification text into expense suggestions.
// Parsing is heuristic: each line is scanned for an amount, a merchant,
// and a debit or credit cue, and a category is suggested from a keyword
// table. Lines without an amount are ignored.
package sms

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Direction is the parser's guess at the money flow.
type Direction string

const (
	DirectionDebit   Direction = "debit"
	DirectionCredit  Direction = "credit"
	DirectionUnknown Direction = "unknown"
)

// Priority buckets a suggestion by amount so clients can surface the
// big-ticket lines first.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ParsedExpense is one suggested expense extracted from the text.
type ParsedExpense struct {
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	Direction          Direction       `json:"direction"`
	CategorySuggestion string          `json:"category_suggestion"`
	Priority           Priority        `json:"priority"`
	RawText            string          `json:"raw_text"`
}

// ParseResult wraps the extracted suggestions.
type ParseResult struct {
	Expenses []ParsedExpense `json:"expenses"`
}

// ParseInput carries the raw SMS or statement text.
type ParseInput struct {
	Text string `json:"text" binding:"required,max=10000"`
}

var (
	// currency marker followed by the amount, e.g. "Rs 500.00", "INR 1,200", "$42.50"
	markedAmount = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹|usd|\$|eur|€)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	// bare decimal amount fallback, e.g. "500.00 debited"
	bareAmount = regexp.MustCompile(`\b([0-9][0-9,]*\.[0-9]{2})\b`)
	// merchant after a linking word, e.g. "at Swiggy", "to ACME Corp"
	merchant = regexp.MustCompile(`(?i)\b(?:at|to|towards)\s+([A-Za-z][A-Za-z0-9&' -]*?)(?:\s+(?:on|via|ref|refno|upi|using)\b|[.,;|]|$)`)

	debitWords  = []string{"debited", "debit", "spent", "paid", "purchase", "withdrawn", "sent"}
	creditWords = []string{"credited", "credit", "received", "refund", "refunded", "deposited"}
)

// categoryKeywords maps merchant and message keywords to a suggested
// category name. First match wins; order groups the common cases.
var categoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"swiggy", "zomato", "restaurant", "cafe", "dominos", "pizza", "food"}, "Dining"},
	{[]string{"uber", "ola", "taxi", "metro", "fuel", "petrol", "diesel", "parking"}, "Transport"},
	{[]string{"amazon", "flipkart", "myntra", "store", "mart", "shop"}, "Shopping"},
	{[]string{"bigbasket", "grocery", "grocer", "supermarket"}, "Groceries"},
	{[]string{"electricity", "water bill", "recharge", "dth", "broadband", "mobile bill", "gas"}, "Utilities"},
	{[]string{"rent", "landlord", "lease"}, "Housing"},
	{[]string{"pharmacy", "hospital", "clinic", "medic", "doctor"}, "Health"},
	{[]string{"netflix", "spotify", "prime", "cinema", "movie"}, "Entertainment"},
}

// Parser extracts expense suggestions from raw text. It holds no state
// beyond a logger; Parse is safe for concurrent use.
type Parser struct {
	logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse scans the text line by line. Lines with no recognizable amount
// are skipped rather than reported as errors.
func (p *Parser) Parse(input ParseInput) ParseResult {
	result := ParseResult{Expenses: []ParsedExpense{}}

	for _, line := range strings.Split(input.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		expense, ok := parseLine(line)
		if !ok {
			continue
		}
		result.Expenses = append(result.Expenses, expense)
	}

	p.logger.Debug("Parsed SMS text",
		zap.Int("lines", strings.Count(input.Text, "\n")+1),
		zap.Int("expenses", len(result.Expenses)))
	return result
}

func parseLine(line string) (ParsedExpense, bool) {
	amount, ok := extractAmount(line)
	if !ok {
		return ParsedExpense{}, false
	}

	name := extractMerchant(line)
	if name == "" {
		name = "Unknown"
	}

	return ParsedExpense{
		Name:               name,
		Amount:             amount,
		Direction:          guessDirection(line),
		CategorySuggestion: suggestCategory(line),
		Priority:           priorityFor(amount),
		RawText:            line,
	}, true
}

func extractAmount(line string) (decimal.Decimal, bool) {
	m := markedAmount.FindStringSubmatch(line)
	if m == nil {
		m = bareAmount.FindStringSubmatch(line)
	}
	if m == nil {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

func extractMerchant(line string) string {
	m := merchant.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func guessDirection(line string) Direction {
	lower := strings.ToLower(line)
	for _, w := range creditWords {
		if strings.Contains(lower, w) {
			return DirectionCredit
		}
	}
	for _, w := range debitWords {
		if strings.Contains(lower, w) {
			return DirectionDebit
		}
	}
	return DirectionUnknown
}

func suggestCategory(line string) string {
	lower := strings.ToLower(line)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return "General"
}

func priorityFor(amount decimal.Decimal) Priority {
	switch {
	case amount.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return PriorityHigh
	case amount.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return PriorityMedium
	default:
		return PriorityLow
	}
}
