package numerology

import (
	"fmt"
	"strings"
)

// ReductionPolicy decides how second, fourth and the derived numbers are
// reduced from their raw sums.
type ReductionPolicy int

const (
	// ReduceSingle adds the decimal digits once: 38 -> 11, 19 -> 10.
	ReduceSingle ReductionPolicy = iota
	// ReduceIterative keeps adding digits while the value is >= 10 and not a
	// master number (11, 22, 33): 38 -> 11, 19 -> 1.
	ReduceIterative
)

func (p ReductionPolicy) String() string {
	switch p {
	case ReduceIterative:
		return "iterative"
	default:
		return "single"
	}
}

// ParseReductionPolicy accepts "single" or "iterative". Empty means single.
func ParseReductionPolicy(s string) (ReductionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return ReduceSingle, nil
	case "iterative":
		return ReduceIterative, nil
	default:
		return ReduceSingle, fmt.Errorf("unknown reduction policy %q", s)
	}
}

// Reduce applies the policy to n.
func (p ReductionPolicy) Reduce(n int) int {
	total := DigitSum(n)
	if p != ReduceIterative {
		return total
	}
	for total >= 10 && !isReductionMaster(total) {
		total = DigitSum(total)
	}
	return total
}

func isReductionMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// DigitSum adds the decimal digits of |n| once. It is not a digital root.
func DigitSum(n int) int {
	total := 0
	for _, d := range Digits(n) {
		total += d
	}
	return total
}

// Digits returns the decimal digits of |n|, most significant first.
// Digits(0) is [0].
func Digits(n int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append(out, n%10)
		n /= 10
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
