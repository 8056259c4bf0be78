package numeric

import (
	"strings"

	"golang.org/x/text/language"
)

// FormattingContext groups the locale rules used during string conversion.
// It is passed explicitly into Parse and Format; values never store it as
// part of their identity.
type FormattingContext struct {
	// Culture is the BCP 47 tag the context was derived from. It is carried
	// for host bridges that need the original tag; conversions only consult
	// Separator and Decimals.
	Culture language.Tag
	// Separator is the decimal separator emitted and accepted between the
	// integer and fractional digits. Defaults to "." when empty.
	Separator string
	// Decimals is the number of fractional places emitted for fractional
	// kinds. Integer kinds ignore it.
	Decimals int
}

// DefaultDecimals matches the common two-place money/quantity presentation
// hosts expect when no explicit precision is configured.
const DefaultDecimals = 2

// commaSeparatorBases lists base languages whose conventional decimal
// separator is a comma. Lookup is by language base only; region subtags do
// not change the separator at this granularity.
var commaSeparatorBases = map[string]struct{}{
	"cs": {}, "da": {}, "de": {}, "el": {}, "es": {}, "fi": {}, "fr": {},
	"hu": {}, "id": {}, "it": {}, "nb": {}, "nl": {}, "no": {}, "pl": {},
	"pt": {}, "ro": {}, "ru": {}, "sk": {}, "sv": {}, "tr": {}, "uk": {},
	"vi": {},
}

// DefaultContext returns the context used when hosts supply no culture:
// root culture, "." separator, two decimal places.
func DefaultContext() FormattingContext {
	return FormattingContext{
		Culture:   language.Und,
		Separator: ".",
		Decimals:  DefaultDecimals,
	}
}

// ContextFor derives a context from a culture tag, picking the conventional
// decimal separator for the tag's base language.
func ContextFor(tag language.Tag) FormattingContext {
	fc := DefaultContext()
	fc.Culture = tag
	base, _ := tag.Base()
	if _, ok := commaSeparatorBases[base.String()]; ok {
		fc.Separator = ","
	}
	return fc
}

// ContextForCulture parses a BCP 47 culture name and derives a context from
// it. Unparseable names fall back to the default context.
func ContextForCulture(name string) FormattingContext {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DefaultContext()
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return DefaultContext()
	}
	return ContextFor(tag)
}

// separator returns the effective separator, defaulting to ".".
func (fc FormattingContext) separator() string {
	if fc.Separator == "" {
		return "."
	}
	return fc.Separator
}

// decimals returns the effective fractional place count, never negative.
func (fc FormattingContext) decimals() int {
	if fc.Decimals < 0 {
		return 0
	}
	return fc.Decimals
}
