package sanitizer

// Parser validates codes and phone numbers under one set of Rules. The zero
// value is not usable; build one with NewParser.
type Parser struct {
	rules Rules
}

func NewParser(rules Rules) *Parser {
	if rules.Priority == nil {
		rules.Priority = DefaultPriority
	}
	return &Parser{rules: rules}
}

func NewParserForVariant(v Variant) *Parser {
	return NewParser(RulesFor(v))
}

func (p *Parser) Rules() Rules {
	return p.rules
}

// Resolver returns a message resolver that follows the parser's priority order.
func (p *Parser) Resolver() *Resolver {
	r := NewResolver()
	r.Priority = p.rules.Priority
	return r
}

var defaultParser = NewParserForVariant(DefaultVariant)

func ParseCode(raw string) CodeResult {
	return defaultParser.ParseCode(raw)
}

func ParsePhone(raw string) PhoneResult {
	return defaultParser.ParsePhone(raw)
}
