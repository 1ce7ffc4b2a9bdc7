package internal

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Canonical query issued for every price-intent message, regardless of how
// the question was phrased.
const priceQuery = "current Bitcoin price in USD and INR"

var (
	pricePat   = regexp.MustCompile(`(?i)\b(btc|bitcoin)\b.*\b(price|rate|value)\b|\b(price|rate|value)\b.*\b(btc|bitcoin)\b`)
	weatherPat = regexp.MustCompile(`(?i)\bweather\b.*\b(?:in|at)\b\s+([a-zA-Z .,'-]+)`)
	recencyPat = regexp.MustCompile(`(?i)\b(now|today|current|live|right now)\b`)

	// Price tokens: currency marker before or after the numeric literal,
	// comma thousands separators and decimal fractions allowed.
	priceBeforePat = regexp.MustCompile(`(?:USD|US\$|\$|INR|₹)\s*[0-9][0-9,]*(?:\.[0-9]+)?`)
	priceAfterPat  = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?\s*(?:USD|US\$|\$|INR|₹)`)

	// Temperature tokens: signed 1-3 digit integer next to a degree marker.
	temperaturePat = regexp.MustCompile(`(?i)-?\d{1,3}\s*(?:°\s*[CF]|deg\s*[CF]|C|F)\b`)

	// Trailing recency words are an artifact of the greedy location capture
	// and are not part of the place name.
	locationTrimPat = regexp.MustCompile(`(?i)[ .,'-]*\b(?:right\s+now|now|today|current|live)\b[ .,'-]*$`)
)

// Classify maps a message to its live-data intent. Rules are checked in
// priority order; the first match wins.
func Classify(message string) Intent {
	if matchesPrice(message) {
		return IntentPrice
	}
	if _, ok := WeatherLocation(message); ok {
		return IntentWeather
	}
	if recencyPat.MatchString(message) {
		return IntentRecency
	}
	return IntentNone
}

func matchesPrice(message string) bool {
	if pricePat.MatchString(message) {
		return true
	}
	return strings.Contains(strings.ToLower(message), "btc") && recencyPat.MatchString(message)
}

// WeatherLocation extracts the location from a "weather in <place>" message,
// trimmed of trailing recency words and punctuation.
func WeatherLocation(message string) (string, bool) {
	m := weatherPat.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	loc := strings.TrimSpace(m[1])
	for {
		trimmed := locationTrimPat.ReplaceAllString(loc, "")
		if trimmed == loc {
			break
		}
		loc = strings.TrimSpace(trimmed)
	}
	if loc == "" {
		return "", false
	}
	return loc, true
}

// ExtractPrice returns the first price-like token in text, verbatim.
func ExtractPrice(text string) (string, bool) {
	if m := priceBeforePat.FindString(text); m != "" {
		return m, true
	}
	if m := priceAfterPat.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// ExtractTemperature returns the first temperature-like token in text, verbatim.
func ExtractTemperature(text string) (string, bool) {
	if m := temperaturePat.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// extractFirst runs extract over the direct answer and then each snippet in
// provider order, stopping at the first success.
func extractFirst(sr SearchResult, extract func(string) (string, bool)) (string, bool) {
	if sr.Answer != "" {
		if v, ok := extract(sr.Answer); ok {
			return v, true
		}
	}
	for _, sn := range sr.Snippets {
		if v, ok := extract(sn); ok {
			return v, true
		}
	}
	return "", false
}

// Detector classifies messages and fetches live search context for the ones
// that look time-sensitive. It is stateless across calls.
type Detector struct {
	searcher Searcher
}

// NewDetector creates a detector over the given search backend.
func NewDetector(s Searcher) *Detector {
	return &Detector{searcher: s}
}

// LiveContext returns a formatted live-context block for the message, or nil
// when the message carries no live intent. When no search backend is
// configured it short-circuits before classification: no message ever
// triggers an outbound call.
func (d *Detector) LiveContext(ctx context.Context, message string) *LiveContext {
	if d.searcher == nil || !d.searcher.Available() {
		return nil
	}

	switch intent := Classify(message); intent {
	case IntentPrice:
		return d.priceContext(ctx)
	case IntentWeather:
		loc, _ := WeatherLocation(message)
		return d.weatherContext(ctx, loc)
	case IntentRecency:
		return d.recencyContext(ctx, message)
	default:
		return nil
	}
}

func (d *Detector) priceContext(ctx context.Context) *LiveContext {
	sr := d.searcher.Search(ctx, priceQuery)

	parts := []string{"[Live Search] Bitcoin price:"}
	if sr.Answer != "" {
		parts = append(parts, "AnswerBox: "+sr.Answer)
	}
	if price, ok := extractFirst(sr, ExtractPrice); ok {
		parts = append(parts, "Parsed price: "+price)
	}
	if block := sourcesBlock("Top sources:", sr.Links); block != "" {
		parts = append(parts, block)
	}
	return &LiveContext{Intent: IntentPrice, Query: priceQuery, Block: strings.Join(parts, "\n")}
}

func (d *Detector) weatherContext(ctx context.Context, location string) *LiveContext {
	query := fmt.Sprintf("weather in %s now", location)
	sr := d.searcher.Search(ctx, query)

	parts := []string{fmt.Sprintf("[Live Search] Weather for %s:", location)}
	if sr.Answer != "" {
		parts = append(parts, "AnswerBox: "+sr.Answer)
	}
	if temp, ok := extractFirst(sr, ExtractTemperature); ok {
		parts = append(parts, "Parsed temperature: "+temp)
	}
	if block := sourcesBlock("Top sources:", sr.Links); block != "" {
		parts = append(parts, block)
	}
	return &LiveContext{Intent: IntentWeather, Query: query, Block: strings.Join(parts, "\n")}
}

func (d *Detector) recencyContext(ctx context.Context, message string) *LiveContext {
	sr := d.searcher.Search(ctx, message)

	parts := []string{"[Live Search] Top results:"}
	if sr.Answer != "" {
		parts = append(parts, "AnswerBox: "+sr.Answer)
	}
	if block := sourcesBlock("Sources:", sr.Links); block != "" {
		parts = append(parts, block)
	}
	return &LiveContext{Intent: IntentRecency, Query: message, Block: strings.Join(parts, "\n")}
}

func sourcesBlock(header string, links []Link) string {
	if len(links) == 0 {
		return ""
	}
	lines := make([]string, 0, len(links)+1)
	lines = append(lines, header)
	for _, l := range links {
		lines = append(lines, fmt.Sprintf("- %s: %s", l.Title, l.URL))
	}
	return strings.Join(lines, "\n")
}
