package numerology

import "slices"

// specialNumbers are the master numbers flagged among the working numbers.
var specialNumbers = [...]int{11, 12, 22}

// SpecialNumberSet is a sorted, duplicate-free subset of {11, 12, 22}.
type SpecialNumberSet []int

// DetectSpecialNumbers intersects {11, 12, 22} with the four working numbers.
func DetectSpecialNumbers(wn WorkingNumbers) SpecialNumberSet {
	candidates := [...]int{wn.First, wn.Second, wn.Third, wn.Fourth}
	set := SpecialNumberSet{}
	for _, special := range specialNumbers {
		if slices.Contains(candidates[:], special) {
			set = append(set, special)
		}
	}
	return set
}

func (s SpecialNumberSet) Contains(n int) bool {
	return slices.Contains(s, n)
}
