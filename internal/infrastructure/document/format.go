package document

import (
	"strconv"
	"strings"
	"time"
)

// FormatBRL renders integer centavos as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	reais := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	for i, r := range reais {
		if i > 0 && (len(reais)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + pad2(cents%100)
	if neg {
		return "-" + out
	}
	return out
}

// FormatDate renders a date in the Brazilian dd/mm/aaaa convention.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatPhone masks a Brazilian phone number as (XX) XXXXX-XXXX, passing
// through inputs too short to mask.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 11 {
		d = d[:11]
	}

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
