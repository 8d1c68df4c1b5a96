package analog

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// Family selects the prototype type.
type Family int

const (
	Butterworth Family = iota
	ChebyshevI
	ChebyshevII
	Elliptic
	Bessel
)

// Families lists every supported family in declaration order.
var Families = []Family{Butterworth, ChebyshevI, ChebyshevII, Elliptic, Bessel}

var familyNames = map[Family]string{
	Butterworth: "Butterworth",
	ChebyshevI:  "Chebyshev I",
	ChebyshevII: "Chebyshev II",
	Elliptic:    "Elliptic",
	Bessel:      "Bessel",
}

var familyAliases = map[string]Family{
	"butterworth": Butterworth,
	"butter":      Butterworth,
	"chebyshevi":  ChebyshevI,
	"chebyshev1":  ChebyshevI,
	"cheby1":      ChebyshevI,
	"cheb1":       ChebyshevI,
	"chebyshevii": ChebyshevII,
	"chebyshev2":  ChebyshevII,
	"cheby2":      ChebyshevII,
	"cheb2":       ChebyshevII,
	"elliptic":    Elliptic,
	"ellip":       Elliptic,
	"cauer":       Elliptic,
	"bessel":      Bessel,
	"thomson":     Bessel,
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return "Family(" + strconv.Itoa(int(f)) + ")"
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// ParseFamily resolves a family name case-insensitively. Spaces, dashes and
// underscores are ignored, so "Chebyshev I", "chebyshev-1" and "cheby1"
// all select ChebyshevI.
func ParseFamily(name string) (Family, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	if f, ok := familyAliases[key]; ok {
		return f, nil
	}

	return 0, rational.Invalidf("family", "unknown filter family %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, rational.Invalidf("family", "unknown filter family %d", int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}
