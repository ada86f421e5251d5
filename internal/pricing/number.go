// Package pricing is the shared booking price-computation engine.
//
// It turns a room's configured rates, the add-on catalogue and a proposed
// booking into the five-stage breakdown (Room Base -> Bundle -> Offer ->
// Provisional -> Final). Both the admin simulation view and the booker
// preview view call this package, so the two can never diverge.
//
// Every function here is a pure computation over its arguments: no I/O, no
// shared state, safe to call on every keystroke. Bad data never produces an
// error - malformed numerics coerce to 0 and unsupported pricing models are
// flagged on the line item instead of failing the whole quote.
package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toNumber коэрсит слабо типизированное JSON-значение в float64
// Нечисловые и нефинитные значения превращаются в 0, функция никогда не паникует
func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

// toUpperString коэрсит слабо типизированное JSON-значение в строку в верхнем регистре
// Все, что не строка, превращается в пустую строку
func toUpperString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToUpper(strings.TrimSpace(s))
	case json.Number:
		return strings.ToUpper(s.String())
	case fmt.Stringer:
		return strings.ToUpper(strings.TrimSpace(s.String()))
	default:
		return ""
	}
}

// finiteOrZero заменяет NaN и Inf на 0
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
