// Package match maps imprecise player input onto known content: fuzzy
// value matching, free-text item guessing against per-room dictionaries,
// and spoken-digit code normalization.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nathoo/escapecore/types"
)

// fillerWords are stripped from item descriptions when building the
// guess dictionaries: verbs, articles, and connective noise that would
// otherwise match everything.
var fillerWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but of to in on at with for from into onto up down " +
			"is are was has have had it its itself this that there theres you " +
			"your youve can cant cannot dont doesnt isnt arent might must still " +
			"will wont just now again too as if do does did use using look looks " +
			"looking see find found take put get move lift push pull open close " +
			"flip climb stand reach remove try force make want like small thin " +
			"empty nothing back out behind inside under top left right item tool " +
			"wall door work scratch break hint help") {
		fillerWords[w] = true
	}
}

// Fuzzy reports whether two values are close enough to count as the same
// word: equal length-insensitive edit distance of at most one, for words
// longer than three runes.
func Fuzzy(a, b string) bool {
	if len(a) <= 3 || len(b) <= 3 {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= 1
}

// Value matches free-form input against a set of known values. Multi-word
// input is matched word by word, fuzzily first, then by first letter as a
// last resort (spoken input often survives only as an initial). Single
// words must match exactly.
func Value(input string, values []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	words := strings.Fields(input)
	if len(words) > 1 {
		for _, w := range words {
			for _, v := range values {
				if Fuzzy(v, w) {
					return v
				}
			}
		}
		for _, w := range words {
			for _, v := range values {
				if w != "" && v != "" && w[0] == v[0] {
					return v
				}
			}
		}
		return ""
	}
	for _, v := range values {
		if v == input {
			return v
		}
	}
	return ""
}

// FoundItem maps a single input word onto a multi-word found item, e.g.
// "duct" onto "air duct". Unmatched input is returned unchanged.
func FoundItem(input string, foundItems []string) string {
	if input == "" {
		return input
	}
	for _, found := range foundItems {
		for _, word := range strings.Fields(found) {
			if input == word {
				return found
			}
		}
	}
	return input
}

// Dictionary maps each item of a room to the notable words of its rule
// descriptions, for guessing which item free text is talking about.
type Dictionary map[string][]string

// NewDictionary builds the guess dictionary for one room from the text
// variants of its item rules.
func NewDictionary(room *types.Room) Dictionary {
	dict := Dictionary{}
	for _, id := range room.ItemOrder {
		item := room.Items[id]
		seen := map[string]bool{}
		var words []string
		for _, rule := range item.Rules {
			for _, variant := range rule.Variants {
				for _, w := range strings.Fields(normalize(variant)) {
					if fillerWords[w] || seen[w] {
						continue
					}
					seen[w] = true
					words = append(words, w)
				}
			}
		}
		dict[id] = words
	}
	return dict
}

// Item returns the item whose dictionary words overlap the raw input
// most, or empty when nothing overlaps.
func (d Dictionary) Item(raw string) string {
	rawWords := strings.Fields(normalize(raw))
	best, max := "", 0
	for id, words := range d {
		count := 0
		for _, w := range words {
			for _, rw := range rawWords {
				if rw == w {
					count++
				}
			}
		}
		if count > max {
			max = count
			best = id
		}
	}
	return best
}

func normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// spokenDigits maps transcription variants of spoken digits, compensating
// for common speech-to-text confusions.
var spokenDigits = map[string]byte{
	"0": '0', "zero": '0', "oh": '0',
	"1": '1', "one": '1', "won": '1', "wan": '1',
	"2": '2', "two": '2', "to": '2', "too": '2',
	"3": '3', "three": '3', "free": '3',
	"4": '4', "four": '4', "for": '4', "fore": '4', "form": '4', "war": '4',
	"5": '5', "five": '5', "hive": '5',
	"6": '6', "six": '6', "sex": '6',
	"7": '7', "seven": '7',
	"8": '8', "eight": '8', "ate": '8',
	"9": '9', "nine": '9', "dine": '9',
}

// Code extracts a digit code from raw input, accepting both literal
// digit runs and spoken digit words.
func Code(raw string) string {
	raw = normalize(raw)
	if !strings.Contains(strings.TrimSpace(raw), " ") {
		return digitsOnly(strings.TrimSpace(raw))
	}
	var b strings.Builder
	for _, word := range strings.Fields(raw) {
		if d, ok := spokenDigits[word]; ok {
			b.WriteByte(d)
		} else {
			b.WriteString(digitsOnly(word))
		}
	}
	return b.String()
}

// ObviousCodes are guesses players try first; the engine answers them
// with a dedicated easter-egg response.
var ObviousCodes = []string{"1234", "4321", "0000", "1111"}

// Obvious reports whether a code is one of the cliché guesses.
func Obvious(code string) bool {
	for _, c := range ObviousCodes {
		if code == c {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
