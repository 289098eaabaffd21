package numerology_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

type BirthDateSuite struct {
	suite.Suite
}

func TestBirthDateSuite(t *testing.T) {
	suite.Run(t, new(BirthDateSuite))
}

func (s *BirthDateSuite) TestParseAcceptsRealDates() {
	cases := map[string]numerology.BirthDate{
		"15.05.1990": {Day: 15, Month: 5, Year: 1990},
		"05.07.2005": {Day: 5, Month: 7, Year: 2005},
		"29.02.2000": {Day: 29, Month: 2, Year: 2000},
		"31.12.0001": {Day: 31, Month: 12, Year: 1},
	}
	for input, want := range cases {
		s.Run(input, func() {
			got, err := numerology.ParseBirthDate(input)
			s.Require().NoError(err)
			s.Equal(want, got)
			s.Equal(input, got.String())
		})
	}
}

func (s *BirthDateSuite) TestParseRejectsBadLayout() {
	for _, input := range []string{
		"1-5-1990",
		"",
		"15.5.1990",
		"15.05.90",
		"15/05/1990",
		" 15.05.1990",
		"15.05.1990\n",
		"15.05.19900",
		"١٥.٠٥.١٩٩٠",
	} {
		s.Run(input, func() {
			_, err := numerology.ParseBirthDate(input)
			s.Require().Error(err)
			s.ErrorIs(err, numerology.ErrInvalidDateFormat)
			s.NotErrorIs(err, numerology.ErrInvalidCalendarDate)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func (s *BirthDateSuite) TestParseRejectsUnrealDates() {
	for _, input := range []string{
		"31.02.1990",
		"29.02.2001",
		"31.04.1990",
		"00.01.1990",
		"01.00.1990",
		"01.13.1990",
		"01.01.0000",
	} {
		s.Run(input, func() {
			_, err := numerology.ParseBirthDate(input)
			s.Require().Error(err)
			s.ErrorIs(err, numerology.ErrInvalidCalendarDate)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func (s *BirthDateSuite) TestDigits() {
	digits, err := numerology.ExtractDigits("15.05.1990")
	s.Require().NoError(err)
	s.Equal(numerology.DigitSequence{1, 5, 0, 5, 1, 9, 9, 0}, digits)
	s.Equal(30, digits.Sum())

	digits, err = numerology.ExtractDigits("05.07.2005")
	s.Require().NoError(err)
	s.Equal(numerology.DigitSequence{0, 5, 0, 7, 2, 0, 0, 5}, digits)

	_, err = numerology.ExtractDigits("31.02.1990")
	s.ErrorIs(err, numerology.ErrInvalidCalendarDate)
}

func (s *BirthDateSuite) TestMillennial() {
	s.False(numerology.BirthDate{Day: 31, Month: 12, Year: 1999}.Millennial())
	s.True(numerology.BirthDate{Day: 1, Month: 1, Year: 2000}.Millennial())
}
