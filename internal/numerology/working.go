package numerology

// millennialOffset is added to first for years >= 2000. Its digits are also
// spliced into the full digit array.
const millennialOffset = 19

// WorkingNumbers are the four numbers derived from a birth date.
// Third can be small or negative for early-day, low-sum dates.
type WorkingNumbers struct {
	First  int
	Second int
	Third  int
	Fourth int
}

// CalculateWorkingNumbers derives first..fourth.
//
//	first  = sum of the eight digits
//	second = reduce(first)
//	third  = first + 19                      if year >= 2000
//	         first - 2*leading day digit      otherwise
//	fourth = reduce(|third|)
//
// The leading day digit is the tens digit, or the ones digit when the tens
// digit is zero ("05" uses 5).
func CalculateWorkingNumbers(digits DigitSequence, year int, policy ReductionPolicy) WorkingNumbers {
	first := digits.Sum()

	var third int
	if year >= 2000 {
		third = first + millennialOffset
	} else {
		effective := digits[0]
		if effective == 0 {
			effective = digits[1]
		}
		third = first - 2*effective
	}

	return WorkingNumbers{
		First:  first,
		Second: policy.Reduce(first),
		Third:  third,
		Fourth: policy.Reduce(abs(third)),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
