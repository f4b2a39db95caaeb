package sanitizer

import (
	"github.com/nyaruka/phonenumbers"

	"entrycheck/pkg/locale"
)

// PhoneResult is the outcome of parsing a U.S. phone number.
//
// BadAreaCode is nil unless exactly ten digits remain after country-code
// stripping. The formatted parts are set when the number is valid or when only
// the area code was rejected, so a UI can still echo what was understood.
type PhoneResult struct {
	OriginalValue string `json:"originalValue"`
	CleanedValue  string `json:"cleanedValue"`
	Value         string `json:"value"`
	IsValid       bool   `json:"isValid"`
	InvalidChar   bool   `json:"invalidChar"`
	IsBlank       bool   `json:"isBlank"`
	WrongCount    bool   `json:"wrongCount"`
	BadAreaCode   *bool  `json:"badAreaCode,omitempty"`

	Formatted string `json:"formatted,omitempty"`
	AreaCode  string `json:"areaCode,omitempty"`
	Part1     string `json:"part1,omitempty"`
	Part2     string `json:"part2,omitempty"`
	E164      string `json:"e164,omitempty"`
}

func (r PhoneResult) HasBadAreaCode() bool {
	return r.BadAreaCode != nil && *r.BadAreaCode
}

func (r PhoneResult) Problems() []Problem {
	return collectProblems(r.IsBlank, r.InvalidChar, r.HasBadAreaCode(), r.WrongCount)
}

func (p *Parser) ParsePhone(raw string) PhoneResult {
	if raw == "" {
		return PhoneResult{IsBlank: true}
	}

	s := scan(raw, p.rules.PhoneSeparators)
	res := PhoneResult{
		OriginalValue: raw,
		CleanedValue:  s.cleaned,
		Value:         stripCountryCode(s.digits),
		InvalidChar:   s.halted,
	}

	res.WrongCount = len(res.Value) != locale.US.NationalNumberLength
	if !res.WrongCount {
		bad := !validAreaCodeLead(res.Value[0])
		res.BadAreaCode = &bad
		res.IsValid = !bad && !res.InvalidChar
	}

	if res.IsValid || res.HasBadAreaCode() {
		res.Formatted, res.AreaCode, res.Part1, res.Part2 = FormatPhone(res.Value)
	}
	if res.IsValid {
		res.E164 = toE164(res.Value)
	}
	return res
}

func (p *Parser) ParsePhoneValue(v any) PhoneResult {
	s, ok := v.(string)
	if !ok {
		return PhoneResult{IsBlank: true}
	}
	return p.ParsePhone(s)
}

// stripCountryCode drops the leading "1" of an 11-digit entry. Any other
// 11-digit entry is left alone and later fails the length check.
func stripCountryCode(digits string) string {
	cc := locale.US.CallingCode
	if len(digits) == len(cc)+locale.US.NationalNumberLength && digits[:len(cc)] == cc {
		return digits[len(cc):]
	}
	return digits
}

func validAreaCodeLead(d byte) bool {
	return d > '1'
}

// FormatPhone renders ten digits as "(AAA) PPP-LLLL". It returns empty strings
// for any other length.
func FormatPhone(digits string) (formatted, areaCode, part1, part2 string) {
	if len(digits) != locale.US.NationalNumberLength {
		return "", "", "", ""
	}
	areaCode, part1, part2 = digits[:3], digits[3:6], digits[6:]
	return "(" + areaCode + ") " + part1 + "-" + part2, areaCode, part1, part2
}

func toE164(national string) string {
	num, err := phonenumbers.Parse(locale.US.E164Prefix+national, locale.US.Code)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
