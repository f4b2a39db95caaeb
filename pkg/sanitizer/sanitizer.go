package sanitizer

import (
	"fmt"
	"strings"
	"unicode"
)

type CharClass int

const (
	Illegal CharClass = iota
	Digit
	Separator
)

func (c CharClass) String() string {
	switch c {
	case Digit:
		return "digit"
	case Separator:
		return "separator"
	default:
		return "illegal"
	}
}

// SeparatorSet lists the runes that may appear between digits. They are kept
// in the cleaned echo of the input but never counted as digits.
type SeparatorSet struct {
	Runes         string
	AnyWhitespace bool
}

func (s SeparatorSet) Contains(r rune) bool {
	if s.AnyWhitespace && unicode.IsSpace(r) {
		return true
	}
	return strings.ContainsRune(s.Runes, r)
}

// With returns a copy of s that also accepts extra.
func (s SeparatorSet) With(extra SeparatorSet) SeparatorSet {
	runes := s.Runes
	for _, r := range extra.Runes {
		if !strings.ContainsRune(runes, r) {
			runes += string(r)
		}
	}
	return SeparatorSet{
		Runes:         runes,
		AnyWhitespace: s.AnyWhitespace || extra.AnyWhitespace,
	}
}

// Classify reports whether r is an ASCII digit, one of the separators in seps,
// or neither.
func Classify(r rune, seps SeparatorSet) CharClass {
	if r >= '0' && r <= '9' {
		return Digit
	}
	if seps.Contains(r) {
		return Separator
	}
	return Illegal
}

type Variant string

const (
	VariantMinimal  Variant = "minimal"
	VariantExtended Variant = "extended"

	DefaultVariant = VariantExtended
)

var (
	// Punctuation is the general separator class of the extended variant.
	Punctuation = SeparatorSet{
		Runes:         ".,/#!$%^&*;:{}=-–—_`~()",
		AnyWhitespace: true,
	}

	MinimalCodeSeparators  = SeparatorSet{Runes: "- "}
	MinimalPhoneSeparators = SeparatorSet{Runes: " -+()."}

	ExtendedCodeSeparators  = Punctuation
	ExtendedPhoneSeparators = MinimalPhoneSeparators.With(Punctuation).With(SeparatorSet{Runes: "*#"})

	// DefaultPriority is the order in which failure flags explain an invalid entry.
	DefaultPriority = []Problem{
		ProblemBlank,
		ProblemInvalidChar,
		ProblemBadAreaCode,
		ProblemWrongCount,
	}
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantMinimal:
		return VariantMinimal, nil
	case VariantExtended, "":
		return VariantExtended, nil
	default:
		return "", fmt.Errorf("unknown separator variant %q (want %q or %q)", s, VariantMinimal, VariantExtended)
	}
}

// Rules is the complete configuration of a Parser.
type Rules struct {
	Variant         Variant
	CodeSeparators  SeparatorSet
	PhoneSeparators SeparatorSet
	Priority        []Problem
}

func RulesFor(v Variant) Rules {
	if v == VariantMinimal {
		return Rules{
			Variant:         VariantMinimal,
			CodeSeparators:  MinimalCodeSeparators,
			PhoneSeparators: MinimalPhoneSeparators,
			Priority:        DefaultPriority,
		}
	}
	return Rules{
		Variant:         VariantExtended,
		CodeSeparators:  ExtendedCodeSeparators,
		PhoneSeparators: ExtendedPhoneSeparators,
		Priority:        DefaultPriority,
	}
}

type scanState int

const (
	scanning scanState = iota
	halted
)

type scanResult struct {
	cleaned string
	digits  string
	halted  bool
}

// scan walks input until the first illegal rune. Digits go to both the cleaned
// echo and the digit run; separators only to the cleaned echo.
func scan(input string, seps SeparatorSet) scanResult {
	var digits strings.Builder
	digits.Grow(len(input))

	state := scanning
	end := len(input)
	for i, r := range input {
		switch Classify(r, seps) {
		case Digit:
			digits.WriteRune(r)
		case Separator:
		default:
			state = halted
			end = i
		}
		if state == halted {
			break
		}
	}

	return scanResult{
		cleaned: input[:end],
		digits:  digits.String(),
		halted:  state == halted,
	}
}
