package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern captures a number with optional thousands separators and an
// optional decimal part, followed by an optional Korean currency unit.
var amountPattern = regexp.MustCompile(`([0-9][0-9,]*(?:\.[0-9]+)?)\s*(억|만[ ]?원|만|원)?`)

// ParseSalary extracts an annual salary in KRW from free text like
// "연봉 5,000만원 이상", "1억 2,000만원" or "40,000,000원". It returns
// (0, false) when no figure is present ("면접 후 결정", "회사 내규에 따름").
// Unit-less numbers are treated as raw KRW.
//
// Adjacent amounts combine only as a descending unit chain (억 followed by
// 만원), the composite notation for a single figure. Any other pair of
// amounts stays separate, as the bounds of a range like
// "2,000만원 ~ 3,000만원" must; the largest single figure wins, so a range
// parses to its advertised maximum, never the sum of its bounds.
func ParseSalary(text string) (int64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	type amount struct {
		value float64
		unit  string // "억", "만" or "" for raw KRW
	}
	var amounts []amount
	for _, m := range amountPattern.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || v == 0 {
			continue
		}
		unit := strings.ReplaceAll(m[2], " ", "")
		switch unit {
		case "만원":
			unit = "만"
		case "원":
			unit = ""
		}
		amounts = append(amounts, amount{value: v, unit: unit})
	}

	var best int64
	for i := 0; i < len(amounts); i++ {
		a := amounts[i]
		var krw float64
		switch a.unit {
		case "억":
			krw = a.value * 100_000_000
			if i+1 < len(amounts) && amounts[i+1].unit == "만" {
				krw += amounts[i+1].value * 10_000
				i++
			}
		case "만":
			krw = a.value * 10_000
		default:
			krw = a.value
		}
		if v := int64(math.Round(krw)); v > best {
			best = v
		}
	}

	if best > 0 {
		return best, true
	}
	return 0, false
}
