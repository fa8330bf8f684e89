package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	bedRateYoung     = decimal.NewFromInt(20)
	bedRateTeen      = decimal.NewFromInt(40)
	breakfastRateKid = decimal.NewFromInt(15)
	breakfastRateOld = decimal.NewFromInt(18)
)

// ParseChildAges reads a comma-separated age list. Each token contributes the
// integer found at its start ("7", " 12 ", "5yrs"); tokens without one are dropped.
func ParseChildAges(s string) []int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ages []int
	for _, tok := range strings.Split(s, ",") {
		if age, ok := leadingInt(tok); ok {
			ages = append(ages, age)
		}
	}
	return ages
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// BedRate is the nightly extra-bed charge for a child of the given age.
func BedRate(age int) decimal.Decimal {
	switch {
	case age >= 3 && age <= 11:
		return bedRateYoung
	case age >= 12 && age <= 17:
		return bedRateTeen
	default:
		return decimal.Zero
	}
}

// BreakfastRate is the nightly breakfast charge for a child of the given age.
// The upper bracket has no ceiling.
func BreakfastRate(age int) decimal.Decimal {
	switch {
	case age >= 6 && age <= 12:
		return breakfastRateKid
	case age > 12:
		return breakfastRateOld
	default:
		return decimal.Zero
	}
}

type ChildrenCharge struct {
	Bed       decimal.Decimal
	Breakfast decimal.Decimal
}

// ChildrenSurcharge sums per-child nightly bed and breakfast charges over the stay.
func ChildrenSurcharge(ages []int, nights int) ChildrenCharge {
	if len(ages) == 0 || nights <= 0 {
		return ChildrenCharge{Bed: decimal.Zero, Breakfast: decimal.Zero}
	}
	bed, breakfast := decimal.Zero, decimal.Zero
	for _, age := range ages {
		bed = bed.Add(BedRate(age))
		breakfast = breakfast.Add(BreakfastRate(age))
	}
	n := decimal.NewFromInt(int64(nights))
	return ChildrenCharge{
		Bed:       bed.Mul(n),
		Breakfast: breakfast.Mul(n),
	}
}
