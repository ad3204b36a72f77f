// Package culture supplies the locale data consumed by the number and
// date/time codecs: sign and separator strings, day and month names, AM/PM
// designators, standard patterns and the active calendar.
//
// Nothing in this module reads an ambient "current culture". Every parse and
// format call takes a Provider; a nil Provider means Invariant.
package culture

import (
	"fmt"

	"github.com/shabbyrobe/go-prim/calendar"
	"golang.org/x/text/language"
)

// Provider is implemented by anything that can hand out locale data. The
// returned values must not be mutated by the caller.
type Provider interface {
	NumberFormat() *NumberFormat
	DateTimeFormat() *DateTimeFormat
}

// Culture is an immutable bundle of locale data. Use the With methods to
// derive modified copies.
type Culture struct {
	tag  language.Tag
	name string
	nf   *NumberFormat
	dtf  *DateTimeFormat
}

var _ Provider = (*Culture)(nil)

func (c *Culture) Tag() language.Tag               { return c.tag }
func (c *Culture) Name() string                    { return c.name }
func (c *Culture) NumberFormat() *NumberFormat     { return c.nf }
func (c *Culture) DateTimeFormat() *DateTimeFormat { return c.dtf }

func (c *Culture) String() string {
	if c.name == "" {
		return "invariant"
	}
	return c.name
}

// WithNumberFormat returns a copy of c using nf.
func (c *Culture) WithNumberFormat(nf *NumberFormat) *Culture {
	out := *c
	out.nf = nf
	return &out
}

// WithDateTimeFormat returns a copy of c using dtf.
func (c *Culture) WithDateTimeFormat(dtf *DateTimeFormat) *Culture {
	out := *c
	out.dtf = dtf
	return &out
}

// WithCalendar returns a copy of c whose date/time data uses cal. If the
// culture carries era names or patterns specific to cal, they are swapped in.
func (c *Culture) WithCalendar(cal calendar.Calendar) *Culture {
	dtf := c.dtf.Clone()
	dtf.gregorian = c.dtf.Gregorian()
	dtf.Calendar = cal
	if over, ok := calendarOverrides[calendarKey{c.name, cal.ID()}]; ok {
		over(dtf)
	}
	return c.WithDateTimeFormat(dtf)
}

// Number returns p's NumberFormat, or the invariant one if p is nil.
func Number(p Provider) *NumberFormat {
	if p == nil {
		return Invariant.nf
	}
	if nf := p.NumberFormat(); nf != nil {
		return nf
	}
	return Invariant.nf
}

// DateTime returns p's DateTimeFormat, or the invariant one if p is nil.
func DateTime(p Provider) *DateTimeFormat {
	if p == nil {
		return Invariant.dtf
	}
	if dtf := p.DateTimeFormat(); dtf != nil {
		return dtf
	}
	return Invariant.dtf
}

var (
	supportedTags []language.Tag
	byTag         = map[language.Tag]*Culture{}
	matcher       language.Matcher
)

func register(c *Culture) {
	supportedTags = append(supportedTags, c.tag)
	byTag[c.tag] = c
}

func init() {
	register(Invariant)
	for _, c := range builtins {
		register(c)
	}
	matcher = language.NewMatcher(supportedTags)
}

// Lookup returns the built-in culture that best matches tag. Unmatched tags
// fall back to Invariant. A match must share tag's base language.
func Lookup(tag language.Tag) *Culture {
	if c, ok := byTag[tag]; ok {
		return c
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Invariant
	}
	c := byTag[supportedTags[idx]]
	want, _ := tag.Base()
	got, _ := c.tag.Base()
	if want != got {
		return Invariant
	}
	return c
}

// Parse resolves a BCP 47 name such as "fr-FR" to a built-in culture. The
// empty string is the invariant culture.
func Parse(name string) (*Culture, error) {
	if name == "" {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("culture: name %q invalid: %w", name, err)
	}
	return Lookup(tag), nil
}

// MustParse is like Parse but panics on error.
func MustParse(name string) *Culture {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

type calendarKey struct {
	name string
	id   calendar.ID
}
