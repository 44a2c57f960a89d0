package crontab

import (
	"math/bits"
	"strconv"
	"strings"
)

// FieldKind identifies one of the five schedule dimensions.
type FieldKind int

const (
	Minute FieldKind = iota
	Hour
	MonthDay
	Month
	WeekDay
)

type fieldSpec struct {
	name  string
	min   int
	max   int
	floor int            // lowest accepted literal; differs from min only for weekday 0
	names map[string]int // optional three-letter aliases
}

var monthNames = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var weekdayNames = map[string]int{
	"MON": 1, "TUE": 2, "WED": 3, "THU": 4, "FRI": 5, "SAT": 6, "SUN": 7,
}

var fieldSpecs = [...]fieldSpec{
	Minute:   {name: "Minute", min: 0, max: 59, floor: 0},
	Hour:     {name: "Hour", min: 0, max: 23, floor: 0},
	MonthDay: {name: "Monthday", min: 1, max: 31, floor: 1},
	Month:    {name: "Month", min: 1, max: 12, floor: 1, names: monthNames},
	WeekDay:  {name: "Weekday", min: 1, max: 7, floor: 0, names: weekdayNames},
}

func (k FieldKind) spec() fieldSpec {
	return fieldSpecs[k]
}

// Name returns the label used in validation messages.
func (k FieldKind) Name() string {
	return k.spec().name
}

// Bounds returns the inclusive domain of the field.
func (k FieldKind) Bounds() (min, max int) {
	s := k.spec()
	return s.min, s.max
}

// resolve turns a token into an integer, consulting the kind's name table
// before falling back to a decimal literal.
func (k FieldKind) resolve(token string) (int, error) {
	if names := k.spec().names; names != nil {
		if v, ok := names[strings.ToUpper(token)]; ok {
			return v, nil
		}
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fieldError(k, "value must be of type int")
	}
	return v, nil
}

func (k FieldKind) checkBounds(v int) error {
	s := k.spec()
	if v < s.floor || v > s.max {
		return fieldError(k, "value must be in range of [%d, %d]", s.min, s.max)
	}
	return nil
}

// normalize maps the traditional Sunday 0 onto the ISO 7.
func (k FieldKind) normalize(v int) int {
	if k == WeekDay && v == 0 {
		return 7
	}
	return v
}

// Field is the validated set of values one field expression denotes. The
// zero value is an empty set; a Field returned by ParseField is never empty.
type Field struct {
	kind FieldKind
	mask uint64
}

// ParseField parses a comma separated field expression into the set of
// integers it denotes.
func ParseField(text string, kind FieldKind) (Field, error) {
	f := Field{kind: kind}
	for _, item := range strings.Split(text, ",") {
		if err := f.addItem(item); err != nil {
			return Field{}, err
		}
	}
	return f, nil
}

func (f *Field) addItem(item string) error {
	kind := f.kind
	if strings.Count(item, "/") > 1 {
		return fieldError(kind, "value must not contain more than one step parameter (/)")
	}
	if strings.Count(item, "-") > 1 {
		return fieldError(kind, "value must not contain more than one range parameter (-)")
	}

	base, stepText, hasStep := strings.Cut(item, "/")
	step := 1
	if hasStep {
		n, err := strconv.Atoi(stepText)
		if err != nil {
			return fieldError(kind, "value must be of type int")
		}
		if n <= 0 {
			return fieldError(kind, "step value must be a positive int")
		}
		step = n
	}

	min, max := kind.Bounds()
	var start, end int
	switch {
	case base == "*":
		start, end = min, max
	case strings.Contains(base, "-"):
		lo, hi, _ := strings.Cut(base, "-")
		var err error
		if start, err = kind.resolve(lo); err != nil {
			return err
		}
		if end, err = kind.resolve(hi); err != nil {
			return err
		}
		if start > end {
			return fieldError(kind, "range start value must not be > than end value")
		}
	default:
		v, err := kind.resolve(base)
		if err != nil {
			return err
		}
		start, end = v, v
		if hasStep {
			end = max
		}
	}

	if err := kind.checkBounds(start); err != nil {
		return err
	}
	if err := kind.checkBounds(end); err != nil {
		return err
	}
	for v := start; v <= end; v += step {
		f.mask |= 1 << uint(kind.normalize(v))
	}
	return nil
}

// Kind reports which dimension the field belongs to.
func (f Field) Kind() FieldKind {
	return f.kind
}

// Has reports whether v is a member of the set.
func (f Field) Has(v int) bool {
	if v < 0 || v > 63 {
		return false
	}
	return f.mask&(1<<uint(v)) != 0
}

// Len returns the number of members.
func (f Field) Len() int {
	return bits.OnesCount64(f.mask)
}

// Full reports whether the set covers the whole domain, i.e. the field does
// not restrict anything.
func (f Field) Full() bool {
	min, max := f.kind.Bounds()
	return f.Len() == max-min+1
}

// Values returns the members in ascending order.
func (f Field) Values() []int {
	out := make([]int, 0, f.Len())
	for m := f.mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

// nextFrom returns the smallest member >= v.
func (f Field) nextFrom(v int) (int, bool) {
	if v < 0 {
		v = 0
	}
	if v > 63 {
		return 0, false
	}
	rest := f.mask >> uint(v)
	if rest == 0 {
		return 0, false
	}
	return v + bits.TrailingZeros64(rest), true
}

// String renders the set as "[a, b, c]".
func (f Field) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range f.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
