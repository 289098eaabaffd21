package numerology_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
)

func TestDigitSum(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{7, 7},
		{10, 1},
		{19, 10},
		{38, 11},
		{72, 9},
		{99, 18},
		{-28, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, numerology.DigitSum(tt.in), "DigitSum(%d)", tt.in)
	}
}

func TestReductionPolicy(t *testing.T) {
	t.Run("single pass stops after one sum", func(t *testing.T) {
		assert.Equal(t, 10, numerology.ReduceSingle.Reduce(19))
		assert.Equal(t, 18, numerology.ReduceSingle.Reduce(99))
	})

	t.Run("iterative stops at one digit or a master number", func(t *testing.T) {
		assert.Equal(t, 1, numerology.ReduceIterative.Reduce(19))
		assert.Equal(t, 9, numerology.ReduceIterative.Reduce(99))
		assert.Equal(t, 11, numerology.ReduceIterative.Reduce(38))
		assert.Equal(t, 22, numerology.ReduceIterative.Reduce(1993))
		assert.Equal(t, 33, numerology.ReduceIterative.Reduce(6999))
	})

	t.Run("parse", func(t *testing.T) {
		p, err := numerology.ParseReductionPolicy("ITERATIVE")
		require.NoError(t, err)
		assert.Equal(t, numerology.ReduceIterative, p)

		p, err = numerology.ParseReductionPolicy("")
		require.NoError(t, err)
		assert.Equal(t, numerology.ReduceSingle, p)

		_, err = numerology.ParseReductionPolicy("recursive")
		assert.Error(t, err)
	})
}

func TestCalculateWorkingNumbers(t *testing.T) {
	tests := []struct {
		name string
		date string
		want numerology.WorkingNumbers
	}{
		{
			name: "before 2000 uses the leading day digit",
			date: "15.05.1990",
			want: numerology.WorkingNumbers{First: 30, Second: 3, Third: 28, Fourth: 10},
		},
		{
			name: "from 2000 adds 19",
			date: "05.07.2005",
			want: numerology.WorkingNumbers{First: 19, Second: 10, Third: 38, Fourth: 11},
		},
		{
			name: "single digit day uses the ones digit",
			date: "05.03.1985",
			want: numerology.WorkingNumbers{First: 31, Second: 4, Third: 21, Fourth: 3},
		},
		{
			name: "third can go negative",
			date: "30.01.1000",
			want: numerology.WorkingNumbers{First: 5, Second: 5, Third: -1, Fourth: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth, err := numerology.ParseBirthDate(tt.date)
			require.NoError(t, err)
			got := numerology.CalculateWorkingNumbers(birth.Digits(), birth.Year, numerology.ReduceSingle)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateWorkingNumbers_Iterative(t *testing.T) {
	birth, err := numerology.ParseBirthDate("05.07.2005")
	require.NoError(t, err)

	got := numerology.CalculateWorkingNumbers(birth.Digits(), birth.Year, numerology.ReduceIterative)
	assert.Equal(t, numerology.WorkingNumbers{First: 19, Second: 1, Third: 38, Fourth: 11}, got)
}

// TestWorkingNumberProperties walks every day from 1900 to 2030.
func TestWorkingNumberProperties(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		birth, err := numerology.ParseBirthDate(d.Format("02.01.2006"))
		require.NoError(t, err)

		digits := birth.Digits()
		wn := numerology.CalculateWorkingNumbers(digits, birth.Year, numerology.ReduceSingle)

		require.GreaterOrEqual(t, wn.First, 0)
		require.LessOrEqual(t, wn.First, 72)
		require.Equal(t, numerology.DigitSum(wn.First), wn.Second)

		if birth.Year >= 2000 {
			require.Equal(t, wn.First+19, wn.Third)
		} else {
			effective := digits[0]
			if effective == 0 {
				effective = digits[1]
			}
			require.Equal(t, wn.First-2*effective, wn.Third)
		}

		third := wn.Third
		if third < 0 {
			third = -third
		}
		require.Equal(t, numerology.DigitSum(third), wn.Fourth)
	}
}
