package trig

import "strings"

// Func identifies one of the supported functions.
//
//   - Cosine, Sine: Taylor series in x².
//   - Secant, Cosecant: reciprocals of Cosine and Sine.
//   - Arctangent: Gregory series, |x| < 1.
type Func int

const (
	// Cosine is cos(x).
	Cosine Func = iota

	// Sine is sin(x).
	Sine

	// Secant is 1/cos(x).
	Secant

	// Cosecant is 1/sin(x).
	Cosecant

	// Arctangent is atan(x).
	Arctangent
)

// funcNames are the short names used by String and ParseFunc, indexed by Func.
var funcNames = [...]string{
	Cosine:     "cos",
	Sine:       "sin",
	Secant:     "sec",
	Cosecant:   "csc",
	Arctangent: "atan",
}

// Funcs returns every supported Func in declaration order.
func Funcs() []Func {
	return []Func{Cosine, Sine, Secant, Cosecant, Arctangent}
}

// String returns the short name ("cos", "sin", "sec", "csc", "atan").
func (f Func) String() string {
	if f < 0 || int(f) >= len(funcNames) {
		return "unknown"
	}

	return funcNames[f]
}

// ParseFunc maps a short name (case-insensitive) back to its Func.
// Returns ErrUnknownFunc for anything else.
func ParseFunc(name string) (Func, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range funcNames {
		if n == name {
			return Func(f), nil
		}
	}

	return 0, trigErrorf("ParseFunc", ErrUnknownFunc)
}
