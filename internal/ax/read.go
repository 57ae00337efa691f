package ax

import "errors"

// ReadAttribute performs one attribute read against el. It tries the
// out-parameter convention first and falls back to the direct convention
// when the binding rejects the first form. A convention mismatch on both
// forms surfaces as the second ErrConvention; any other binding error is
// returned as-is. Exactly one successful read is performed.
func ReadAttribute(b Binding, el Element, attr string) (string, Code, error) {
	value, code, err := b.CopyAttribute(el, attr, ConventionOutParam)
	if errors.Is(err, ErrConvention) {
		value, code, err = b.CopyAttribute(el, attr, ConventionDirect)
	}
	return value, code, err
}
