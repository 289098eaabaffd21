package numerology

import "strings"

// FullDigitArray is the concatenation used for frequency counting. Order is
// kept for display only; lookups depend on counts alone.
type FullDigitArray struct {
	digits []int
}

// BuildFullArray concatenates, in order: the date digits, the digits of first
// and second, [1 9] when year >= 2000, the digits of |third| and the digits of
// fourth.
func BuildFullArray(digits DigitSequence, wn WorkingNumbers, year int) FullDigitArray {
	out := make([]int, 0, 20)
	out = append(out, digits[:]...)
	out = append(out, Digits(wn.First)...)
	out = append(out, Digits(wn.Second)...)
	if year >= 2000 {
		out = append(out, Digits(millennialOffset)...)
	}
	out = append(out, Digits(wn.Third)...)
	out = append(out, Digits(wn.Fourth)...)
	return FullDigitArray{digits: out}
}

// NewFullDigitArray wraps an arbitrary digit list. The slice is copied.
func NewFullDigitArray(digits []int) FullDigitArray {
	return FullDigitArray{digits: append([]int(nil), digits...)}
}

// Digits returns a copy of the array.
func (a FullDigitArray) Digits() []int {
	return append([]int(nil), a.digits...)
}

func (a FullDigitArray) Len() int {
	return len(a.digits)
}

// Count returns how many times digit occurs.
func (a FullDigitArray) Count(digit int) int {
	n := 0
	for _, d := range a.digits {
		if d == digit {
			n++
		}
	}
	return n
}

// String concatenates the digits without separators: "150519903032810".
func (a FullDigitArray) String() string {
	var sb strings.Builder
	sb.Grow(len(a.digits))
	for _, d := range a.digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}
