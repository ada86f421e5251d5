// Package money форматирует денежные суммы для отображения.
//
// Внутренние вычисления движка цен никогда не округляются между этапами,
// округление до двух знаков происходит только здесь, на границе отображения.
package money

import (
	"fmt"
	"math"
	"strings"
)

// Format форматирует сумму в валюте площадки: символ, разделители тысяч,
// ровно два знака после запятой
func Format(symbol string, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// Округляем только для отображения
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)

	return sign + symbol + groupThousands(parts[0]) + "." + parts[1]
}

// groupThousands вставляет разделители тысяч в целую часть: "1234567" -> "1,234,567"
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
