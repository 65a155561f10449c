// Package prompts holds the named narrative prompt bank and the variant
// selector that avoids repeating the variant used last in a session.
package prompts

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bank maps prompt names to their text variants. Content packs may merge
// additional variants over the built-ins.
type Bank struct {
	rng      *rand.Rand
	variants map[string][]string
}

// New creates a bank seeded for deterministic variant selection, holding
// the built-in prompts.
func New(seed int64) *Bank {
	b := &Bank{
		rng:      rand.New(rand.NewSource(seed)),
		variants: map[string][]string{},
	}
	b.Merge(builtins)
	return b
}

// Merge layers a prompt map over the bank. Named entries replace the
// existing variant list wholesale.
func (b *Bank) Merge(m map[string][]string) {
	for name, vs := range m {
		b.variants[name] = append([]string(nil), vs...)
	}
}

// MergeFile loads a YAML prompt pack (name → list of variants) and merges
// it over the bank.
func (b *Bank) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read prompt pack: %w", err)
	}
	var m map[string][]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse prompt pack %s: %w", path, err)
	}
	b.Merge(m)
	return nil
}

// Pick selects a variant for a named bank prompt, avoiding the variant
// recorded in hist for that name. hist is the session's prompt history
// and is updated with the selection.
func (b *Bank) Pick(hist map[string]string, name string) string {
	return b.PickFrom(hist, name, b.variants[name])
}

// PickFrom selects from an explicit variant list, falling back to the
// bank's named entry when the list is empty. With a single variant the
// selection repeats; with more, the previous session choice is excluded.
func (b *Bank) PickFrom(hist map[string]string, name string, variants []string) string {
	if len(variants) == 0 {
		variants = b.variants[name]
	}
	if len(variants) == 0 {
		return ""
	}

	pool := variants
	if last, ok := hist[name]; ok && len(variants) > 1 {
		pool = make([]string, 0, len(variants))
		for _, v := range variants {
			if v != last {
				pool = append(pool, v)
			}
		}
		if len(pool) == 0 {
			pool = variants
		}
	}

	chosen := pool[b.rng.Intn(len(pool))]
	if hist != nil {
		hist[name] = chosen
	}
	return chosen
}

// Article returns the indefinite article for a noun.
func Article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

// OxfordList joins words into a spoken list with the given conjunction,
// e.g. "the desk, the drawer, or the box".
func OxfordList(words []string, conj string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conj + " " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + ", " + conj + " " + words[len(words)-1]
}
