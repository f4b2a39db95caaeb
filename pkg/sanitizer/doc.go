// Package sanitizer validates and normalizes short tokens typed by users.
//
// Two token kinds are supported: an 8-digit confirmation code and a U.S. phone
// number. Every parse is a single left-to-right scan that classifies each rune
// as a digit, a separator or an illegal character, followed by a length check
// and, on success, a formatting step.
//
// Parsing never fails with an error. Blank input, illegal characters, the wrong
// number of digits and bad area codes are all reported as flags on the returned
// result so callers can decide how to present them:
//
//	res := sanitizer.ParsePhone("(212) 555-0199")
//	if !res.IsValid {
//		msg := sanitizer.NewResolver().ForPhone(res, "Phone number")
//		...
//	}
//	fmt.Println(res.Formatted) // (212) 555-0199
//
// The accepted separator characters come from a Variant. VariantMinimal only
// accepts the handful of characters people usually type inside codes and phone
// numbers; VariantExtended, the default, also accepts general punctuation and
// any whitespace. Digit extraction is identical in both.
//
// All functions are pure and safe for concurrent use.
package sanitizer
