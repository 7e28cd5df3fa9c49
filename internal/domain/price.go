package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Price is a monetary amount in paise (1/100 rupee)
type Price int64

// String renders the price with the default rupee sign
func (p Price) String() string {
	return p.Format("₹")
}

// Format renders the price with the given currency symbol and Indian digit
// grouping, e.g. 123456789 paise -> "₹12,34,567.89"
func (p Price) Format(symbol string) string {
	v := int64(p)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, groupIndian(v/100), v%100)
}

// groupIndian inserts commas per the Indian numbering system: the last three
// digits form one group, every two digits before that another
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
