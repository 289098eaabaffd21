package numerology

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

var (
	// ErrInvalidDateFormat means the input is not exactly DD.MM.YYYY.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidCalendarDate means the input has the right shape but names a
	// day that does not exist, such as 31.02.1990.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// DateLayout is the only accepted birth date layout.
const DateLayout = "DD.MM.YYYY"

var datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// BirthDate is a calendrically valid day/month/year triple.
type BirthDate struct {
	Day   int
	Month int
	Year  int
}

// ParseBirthDate validates s against DD.MM.YYYY and the Gregorian calendar.
// Both failures carry dErrors.CodeValidation and unwrap to
// ErrInvalidDateFormat or ErrInvalidCalendarDate respectively.
func ParseBirthDate(s string) (BirthDate, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return BirthDate{}, dErrors.Wrap(ErrInvalidDateFormat, dErrors.CodeValidation,
			fmt.Sprintf("date must use the %s layout", DateLayout))
	}

	// The pattern guarantees ASCII digits, so Atoi cannot fail.
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if !isCalendarDate(day, month, year) {
		return BirthDate{}, dErrors.Wrap(ErrInvalidCalendarDate, dErrors.CodeValidation,
			fmt.Sprintf("%s is not a real calendar date", s))
	}
	return BirthDate{Day: day, Month: month, Year: year}, nil
}

func isCalendarDate(day, month, year int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month && t.Year() == year
}

// String formats the date back into DD.MM.YYYY.
func (b BirthDate) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", b.Day, b.Month, b.Year)
}

// Millennial reports whether the year takes the year >= 2000 branch.
func (b BirthDate) Millennial() bool {
	return b.Year >= 2000
}

// Digits returns the eight digits of the formatted date, left to right.
func (b BirthDate) Digits() DigitSequence {
	return DigitSequence{
		b.Day / 10 % 10, b.Day % 10,
		b.Month / 10 % 10, b.Month % 10,
		b.Year / 1000 % 10, b.Year / 100 % 10, b.Year / 10 % 10, b.Year % 10,
	}
}

// DigitSequence holds the day tens, day ones, month tens, month ones and the
// four year digits. It is an array so copies never alias.
type DigitSequence [8]int

// Sum adds all eight digits.
func (d DigitSequence) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// ExtractDigits parses s and returns its digit sequence.
func ExtractDigits(s string) (DigitSequence, error) {
	b, err := ParseBirthDate(s)
	if err != nil {
		return DigitSequence{}, err
	}
	return b.Digits(), nil
}
