package grocery

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var glyphFractions = strings.NewReplacer(
	"¼", " 1/4",
	"½", " 1/2",
	"¾", " 3/4",
	"⅓", " 1/3",
	"⅔", " 2/3",
	"⅕", " 1/5",
	"⅖", " 2/5",
	"⅗", " 3/5",
	"⅘", " 4/5",
	"⅙", " 1/6",
	"⅚", " 5/6",
	"⅛", " 1/8",
	"⅜", " 3/8",
	"⅝", " 5/8",
	"⅞", " 7/8",
)

// ParseQuantity turns quantity text into a number. It accepts integers,
// decimals, fractions ("1/2"), and whitespace-separated sums of those
// ("1 1/2", "2 1/4 1/4"). Anything unparseable contributes 0; the result is
// never an error.
func ParseQuantity(text string) float64 {
	text = strings.TrimSpace(glyphFractions.Replace(text))
	if text == "" {
		return 0
	}

	if !strings.Contains(text, "/") {
		v, _ := parseLeadingFloat(text)
		return v
	}

	var total float64
	for _, token := range strings.Fields(text) {
		if num, den, found := strings.Cut(token, "/"); found {
			n, ok := parseLeadingFloat(num)
			if !ok {
				continue
			}
			d, ok := parseLeadingFloat(den)
			if !ok || d == 0 {
				continue
			}
			total += n / d
			continue
		}
		if v, ok := parseLeadingFloat(token); ok {
			total += v
		}
	}
	return total
}

// parseLeadingFloat reads the numeric prefix of s, so "2-3" reads as 2.
func parseLeadingFloat(s string) (float64, bool) {
	m := leadingNumberRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
