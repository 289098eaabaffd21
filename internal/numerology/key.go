package numerology

import (
	"fmt"
	"strconv"
	"strings"
)

// Key indexes the interpretation table: "20", "2", "222", "11111" and so on.
type Key string

// OverflowPolicy decides the key shape when a digit occurs more than five
// times.
type OverflowPolicy int

const (
	// OverflowSubtract repeats the digit count-5 times: seven 1s give "11".
	OverflowSubtract OverflowPolicy = iota
	// OverflowCap repeats the digit five times for any count above five.
	OverflowCap
)

const maxKeyRepeat = 5

func (p OverflowPolicy) String() string {
	if p == OverflowCap {
		return "cap"
	}
	return "subtract"
}

// ParseOverflowPolicy accepts "subtract" or "cap". Empty means subtract.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subtract":
		return OverflowSubtract, nil
	case "cap":
		return OverflowCap, nil
	default:
		return OverflowSubtract, fmt.Errorf("unknown overflow policy %q", s)
	}
}

// ResolveKey counts target in arr and encodes the count as a key.
// Targets outside 1..9 have no key and yield "".
func ResolveKey(target int, arr FullDigitArray, policy OverflowPolicy) Key {
	return KeyForCount(target, arr.Count(target), policy)
}

// KeyForCount encodes a digit and its frequency:
//
//	count == 0     -> "{n}0"
//	1 <= count <= 5 -> "{n}" * count
//	count > 5      -> "{n}" * (count-5), or * 5 under OverflowCap
func KeyForCount(target, count int, policy OverflowPolicy) Key {
	if target < 1 || target > 9 || count < 0 {
		return ""
	}
	digit := strconv.Itoa(target)
	switch {
	case count == 0:
		return Key(digit + "0")
	case count <= maxKeyRepeat:
		return Key(strings.Repeat(digit, count))
	case policy == OverflowCap:
		return Key(strings.Repeat(digit, maxKeyRepeat))
	default:
		return Key(strings.Repeat(digit, count-maxKeyRepeat))
	}
}

// Valid reports whether k has one of the key shapes KeyForCount can produce
// for digits 1..9 under either overflow policy: "{n}0" or one to five
// repetitions of n.
func (k Key) Valid() bool {
	if len(k) < 1 || len(k) > maxKeyRepeat {
		return false
	}
	first := k[0]
	if first < '1' || first > '9' {
		return false
	}
	if len(k) == 2 && k[1] == '0' {
		return true
	}
	for i := 1; i < len(k); i++ {
		if k[i] != first {
			return false
		}
	}
	return true
}

// Digit returns the digit the key describes, or 0 for an invalid key.
func (k Key) Digit() int {
	if !k.Valid() {
		return 0
	}
	return int(k[0] - '0')
}
