// Package constraints derives price and cuisine signals from free text.
package constraints

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// PriceTolerance is the half-width of the window around an extracted price.
const PriceTolerance = 20

// BarbecueMarker is the substring that marks a restaurant as serving barbecue.
const BarbecueMarker = "烤"

// barbecueSignals in the text mean the user (or the AI) is talking about barbecue.
var barbecueSignals = []string{"烧烤", "烤肉"}

// pricePattern matches "<N>元", "<N>块", "人均<N>" and "<N>左右". N may use
// any decimal digits, full-width IME input included.
var pricePattern = regexp.MustCompile(`(\p{Nd}+)\s*[元块]|人均\s*(\p{Nd}+)|(\p{Nd}+)\s*左右`)

// CuisineRule maps a category keyword and its trigger substrings onto the
// catalog cuisines it stands for.
type CuisineRule struct {
	Keyword  string
	Triggers []string
	Cuisines []string
}

// CuisineRules is scanned in order. "烧烤" is not a catalog cuisine; only the
// keyword itself stands for the cuisines that serve grilled meat. A trigger
// hit contributes the rule's Keyword.
var CuisineRules = []CuisineRule{
	{Keyword: "烧烤", Triggers: []string{"烧烤", "烤肉", "烤串", "烤"}, Cuisines: []string{"韩式", "京菜"}},
	{Keyword: "川菜", Triggers: []string{"川菜", "川", "辣", "麻", "火锅"}, Cuisines: []string{"川菜"}},
	{Keyword: "湘菜", Triggers: []string{"湘菜", "湘", "湖南"}, Cuisines: []string{"湘菜"}},
	{Keyword: "粤菜", Triggers: []string{"粤菜", "粤", "广东", "广式"}, Cuisines: []string{"粤菜"}},
	{Keyword: "日式", Triggers: []string{"日式", "日", "拉面", "寿司"}, Cuisines: []string{"日式"}},
	{Keyword: "韩式", Triggers: []string{"韩式", "韩", "烤肉"}, Cuisines: []string{"韩式"}},
	{Keyword: "快餐", Triggers: []string{"快餐", "快", "便当", "盒饭"}, Cuisines: []string{"快餐"}},
	{Keyword: "面食", Triggers: []string{"面食", "面", "馄饨", "饺子", "包子"}, Cuisines: []string{"面食"}},
	{Keyword: "火锅", Triggers: []string{"火锅"}, Cuisines: []string{"火锅"}},
	{Keyword: "京菜", Triggers: []string{"京菜", "北京", "烤鸭"}, Cuisines: []string{"京菜"}},
}

// PriceWindow is an inclusive price range around a target.
type PriceWindow struct {
	Target float64
	Min    float64
	Max    float64
}

func (w PriceWindow) Contains(price float64) bool {
	return price >= w.Min && price <= w.Max
}

// Constraints is what could be read from a piece of text. The zero value
// means no constraint.
type Constraints struct {
	Price    *PriceWindow
	Cuisines []string
	Barbecue bool
}

func (c Constraints) Empty() bool {
	return c.Price == nil && len(c.Cuisines) == 0 && !c.Barbecue
}

// HasCuisine reports whether cuisine is among the matched categories.
func (c Constraints) HasCuisine(cuisine string) bool {
	for _, m := range c.Cuisines {
		if m == cuisine {
			return true
		}
	}
	return false
}

// Extract runs every extractor over text.
func Extract(text string) Constraints {
	c := Constraints{
		Cuisines: MatchCuisines(text),
		Barbecue: HasBarbecueSignal(text),
	}
	if w, ok := ExtractPrice(text); ok {
		c.Price = &w
	}
	return c
}

// ExtractPrice uses the first price mention only. The window is
// [target-20, target+20] clamped at zero.
func ExtractPrice(text string) (PriceWindow, bool) {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return PriceWindow{}, false
	}
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		target, err := strconv.ParseFloat(asciiDigits(group), 64)
		if err != nil {
			return PriceWindow{}, false
		}
		low := target - PriceTolerance
		if low < 0 {
			low = 0
		}
		return PriceWindow{Target: target, Min: low, Max: target + PriceTolerance}, true
	}
	return PriceWindow{}, false
}

// asciiDigits rewrites every decimal digit in s as its ASCII form.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII || !unicode.IsDigit(r) {
			return r
		}
		return '0' + digitValue(r)
	}, s)
}

// digitValue relies on Unicode laying out decimal digits in runs of ten that
// start at zero.
func digitValue(r rune) rune {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return (r - zero) % 10
}

// MatchCuisines first looks for rule keywords verbatim in the text and maps
// each hit to its rule's cuisines. Only when none is present does it fall
// back to trigger containment in either direction, which yields rule
// keywords. Result order follows CuisineRules, without duplicates.
func MatchCuisines(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(cuisines []string) {
		for _, c := range cuisines {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	for _, rule := range CuisineRules {
		if strings.Contains(text, rule.Keyword) {
			add(rule.Cuisines)
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, rule := range CuisineRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, trigger) || strings.Contains(trigger, text) {
				add([]string{rule.Keyword})
				break
			}
		}
	}
	return out
}

// HasBarbecueSignal reports whether text mentions barbecue or grilled meat.
func HasBarbecueSignal(text string) bool {
	text = strings.ToLower(text)
	for _, s := range barbecueSignals {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
