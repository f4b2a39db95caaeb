package sanitizer

import (
	"fmt"
	"slices"
)

type Problem string

const (
	ProblemNone        Problem = ""
	ProblemBlank       Problem = "isBlank"
	ProblemInvalidChar Problem = "invalidChar"
	ProblemBadAreaCode Problem = "badAreaCode"
	ProblemWrongCount  Problem = "wrongCount"
	ProblemUnknown     Problem = "unknown"
)

func collectProblems(blank, invalidChar, badAreaCode, wrongCount bool) []Problem {
	var out []Problem
	if blank {
		out = append(out, ProblemBlank)
	}
	if invalidChar {
		out = append(out, ProblemInvalidChar)
	}
	if badAreaCode {
		out = append(out, ProblemBadAreaCode)
	}
	if wrongCount {
		out = append(out, ProblemWrongCount)
	}
	return out
}

var (
	DefaultTemplates = map[Problem]string{
		ProblemBlank:       "Please enter your %s.",
		ProblemInvalidChar: "%s contains a character that is not allowed.",
		ProblemBadAreaCode: "%s has an invalid area code. Area codes cannot start with 0 or 1.",
		ProblemWrongCount:  "%s has the wrong number of digits.",
		ProblemUnknown:     "%s is not valid.",
	}

	CodeFallback  = "Invalid code. Enter the code that was emailed to you."
	PhoneFallback = "Invalid U.S. phone number. Enter your phone number with area code."
)

// Resolver turns failure flags into a single user-facing message. Templates
// receive the field name as their only argument.
type Resolver struct {
	Priority  []Problem
	Templates map[Problem]string
}

func NewResolver() *Resolver {
	return &Resolver{
		Priority:  DefaultPriority,
		Templates: DefaultTemplates,
	}
}

func (r *Resolver) Message(problem Problem, field string) string {
	tmpl, ok := r.Templates[problem]
	if !ok {
		tmpl = r.Templates[ProblemUnknown]
	}
	if tmpl == "" {
		tmpl = DefaultTemplates[ProblemUnknown]
	}
	return fmt.Sprintf(tmpl, field)
}

// Resolve picks the first problem in priority order that is present. When none
// of them is, it reports ProblemUnknown with the generic message.
func (r *Resolver) Resolve(problems []Problem, field string) (Problem, string) {
	if len(problems) == 0 {
		return ProblemNone, ""
	}
	for _, p := range r.Priority {
		if slices.Contains(problems, p) {
			return p, r.Message(p, field)
		}
	}
	return ProblemUnknown, r.Message(ProblemUnknown, field)
}

func (r *Resolver) ForCode(res CodeResult, field string) string {
	if res.IsValid {
		return ""
	}
	problem, msg := r.Resolve(res.Problems(), field)
	if problem == ProblemNone {
		return CodeFallback
	}
	return msg
}

func (r *Resolver) ForPhone(res PhoneResult, field string) string {
	if res.IsValid {
		return ""
	}
	problem, msg := r.Resolve(res.Problems(), field)
	if problem == ProblemNone {
		return PhoneFallback
	}
	return msg
}
