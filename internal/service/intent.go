package service

import (
	"regexp"
	"strconv"
	"strings"

	"aiservice/internal/model"
)

// Keyword tags in detection order
const (
	KeywordCollege = "college"
	KeywordStudent = "student"
)

// space matches any Unicode whitespace, not only RE2's ASCII \s
const space = `[\s\v\p{Z}\x1c-\x1f\x85]*`

var (
	bhkPattern   = regexp.MustCompile(`(\d+)` + space + `bhk`)
	pricePattern = regexp.MustCompile(`(under|below)` + space + `(\d+)`)

	keywordTags = []string{KeywordCollege, KeywordStudent}
)

// IntentParser parses natural language queries into structured filters using
// fixed patterns. It holds no state and is safe for concurrent use.
type IntentParser struct{}

// NewIntentParser creates a new intent parser
func NewIntentParser() *IntentParser {
	return &IntentParser{}
}

// Parse extracts bedrooms, max price and keyword tags from a query.
// It never fails: an unmatched pattern leaves its field empty.
func (p *IntentParser) Parse(query string) *model.ExtractedFilters {
	text := strings.ToLower(query)

	filters := &model.ExtractedFilters{
		Keywords: []string{},
	}

	// Only the first BHK mention counts
	if m := bhkPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			filters.Bedrooms = &n
		}
	}

	if m := pricePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.ParseInt(m[2], 10, 64); err == nil {
			filters.MaxPrice = &n
		}
	}

	for _, tag := range keywordTags {
		if strings.Contains(text, tag) {
			filters.Keywords = append(filters.Keywords, tag)
		}
	}

	return filters
}
