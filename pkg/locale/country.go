package locale

import "strings"

const (
	DefaultTimezone = "UTC"
)

// Country holds the numbering-plan facts the phone parser relies on.
type Country struct {
	Code                 string // ISO 3166-1 alpha-2 region code (e.g., "US")
	Name                 string
	CallingCode          string // country calling code without "+" (e.g., "1")
	E164Prefix           string // "+" followed by CallingCode
	NationalNumberLength int    // digits after the calling code
	DefaultTimezone      string // IANA timezone identifier
}

var (
	US = Country{
		Code:                 "US",
		Name:                 "United States",
		CallingCode:          "1",
		E164Prefix:           "+1",
		NationalNumberLength: 10,
		DefaultTimezone:      "America/New_York",
	}

	Countries = map[string]Country{
		US.Code: US,
	}
)

func Lookup(code string) (Country, bool) {
	c, ok := Countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// InferCountryFromE164 returns the country whose E.164 prefix and national
// number length match phone, or nil.
func InferCountryFromE164(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	for _, country := range Countries {
		rest, ok := strings.CutPrefix(normalized, country.E164Prefix)
		if ok && len(rest) == country.NationalNumberLength {
			return &country
		}
	}

	return nil
}

func InferTimezoneFromE164(phone string) string {
	if c := InferCountryFromE164(phone); c != nil {
		return c.DefaultTimezone
	}
	return DefaultTimezone
}
