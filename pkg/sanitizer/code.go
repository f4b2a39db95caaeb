package sanitizer

const CodeLength = 8

// CodeResult is the outcome of parsing a confirmation code. Formatted and the
// code parts are only set when IsValid is true.
type CodeResult struct {
	OriginalValue string `json:"originalValue"`
	CleanedValue  string `json:"cleanedValue"`
	Value         string `json:"value"`
	IsValid       bool   `json:"isValid"`
	InvalidChar   bool   `json:"invalidChar"`
	IsBlank       bool   `json:"isBlank"`
	WrongCount    bool   `json:"wrongCount"`

	Formatted string `json:"formatted,omitempty"`
	CodePart1 string `json:"codepart1,omitempty"`
	CodePart2 string `json:"codepart2,omitempty"`
}

// Problems lists every failure flag set on r in canonical priority order.
func (r CodeResult) Problems() []Problem {
	return collectProblems(r.IsBlank, r.InvalidChar, false, r.WrongCount)
}

func (p *Parser) ParseCode(raw string) CodeResult {
	if raw == "" {
		return CodeResult{IsBlank: true}
	}

	s := scan(raw, p.rules.CodeSeparators)
	res := CodeResult{
		OriginalValue: raw,
		CleanedValue:  s.cleaned,
		Value:         s.digits,
		InvalidChar:   s.halted,
		WrongCount:    len(s.digits) != CodeLength,
	}
	res.IsValid = !res.InvalidChar && !res.WrongCount

	if res.IsValid {
		res.Formatted, res.CodePart1, res.CodePart2 = FormatCode(res.Value)
	}
	return res
}

// ParseCodeValue treats anything other than a non-empty string as blank input.
func (p *Parser) ParseCodeValue(v any) CodeResult {
	s, ok := v.(string)
	if !ok {
		return CodeResult{IsBlank: true}
	}
	return p.ParseCode(s)
}

// FormatCode splits an 8-digit code into halves joined by a hyphen. It returns
// empty strings for any other length.
func FormatCode(digits string) (formatted, part1, part2 string) {
	if len(digits) != CodeLength {
		return "", "", ""
	}
	part1, part2 = digits[:4], digits[4:]
	return part1 + "-" + part2, part1, part2
}
