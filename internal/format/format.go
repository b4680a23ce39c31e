// Package format holds the display formatting shared by all invoice
// templates: Indian-locale currency, long-form dates, and the
// amount-in-words clause printed on tax invoices.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency renders an amount as INR with Indian digit grouping, e.g.
// 123456.78 -> "₹1,23,456.78". The last three integer digits form one group,
// every group above that has two digits.
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	s := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	return sign + "₹" + groupIndian(intPart) + "." + fracPart
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}

// Date renders an ISO date ("2006-01-02", RFC 3339 also accepted) in the
// long Indian form, e.g. "25 December 2024". Empty input renders empty;
// templates supply their own placeholder where their layout shows one.
func Date(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t, err = time.Parse(time.RFC3339, iso)
		if err != nil {
			return iso
		}
	}
	return t.Format("2 January 2006")
}

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// AmountInWords spells a non-negative amount as rupees and paise, e.g.
// 1234.50 -> "Rupees One Thousand Two Hundred Thirty-Four and Fifty Paise
// Only". Whole-rupee amounts omit the paise clause; zero renders as
// "Rupees Zero Only". Amounts of a lakh and above follow Indian numbering.
func AmountInWords(amount float64) string {
	totalPaise := decimal.NewFromFloat(amount).Round(2).Mul(decimal.NewFromInt(100)).IntPart()
	rupees := totalPaise / 100
	paise := totalPaise % 100

	var rupeeWords string
	if rupees == 0 {
		rupeeWords = "zero"
	} else {
		rupeeWords = integerWords(rupees)
	}

	if paise > 0 {
		return "Rupees " + capitalizeWords(rupeeWords) + " and " + capitalizeWords(twoDigitWords(paise)) + " Paise Only"
	}
	return "Rupees " + capitalizeWords(rupeeWords) + " Only"
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + "-" + onesWords[n%10]
}

func integerWords(n int64) string {
	switch {
	case n < 100:
		return twoDigitWords(n)
	case n < 1000:
		return joinWords(onesWords[n/100]+" hundred", n%100)
	case n < 100000:
		return joinWords(integerWords(n/1000)+" thousand", n%1000)
	case n < 10000000:
		return joinWords(integerWords(n/100000)+" lakh", n%100000)
	default:
		return joinWords(integerWords(n/10000000)+" crore", n%10000000)
	}
}

func joinWords(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + integerWords(remainder)
}

func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			if p != "" {
				parts[j] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}
