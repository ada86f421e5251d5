package pricing

import (
	"math"
	"strings"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// RoomBase per-hour base price of a room and the rule that produced it
//
// PerHour is deliberately a per-hour figure: the booking total is
// PerHour x durationHours, computed by ComputeBreakdown. Keeping the
// tie-break independent of the time dimension makes the hourly figure
// individually testable and displayable.
type RoomBase struct {
	PerHour float64
	Rule    string // higher | lower | perPerson | perRoom | none
}

// RoomBaseForHour вычисляет базовую цену комнаты за час
//
// Если настроены обе ставки (>0), применяется tie-break: max при rule
// "higher", min при "lower". Дефолт при незаданном rule - "higher";
// это продуктовая политика, унаследованная из исходной конфигурации,
// а не выводимый инвариант. Если настроена одна ставка - берется она,
// если ни одной - база равна 0
func RoomBaseForHour(room *domain.Room, attendees float64) RoomBase {
	attendees = finiteOrZero(attendees)

	var perPerson, perRoom float64
	rule := domain.RuleHigher
	if room != nil && room.Pricing != nil {
		perPerson = toNumber(room.Pricing.PerPerson)
		perRoom = toNumber(room.Pricing.PerRoom)
		if strings.ToLower(strings.TrimSpace(room.Pricing.Rule)) == domain.RuleLower {
			rule = domain.RuleLower
		}
	}

	var perPersonTotal, perRoomTotal float64
	if perPerson > 0 {
		perPersonTotal = attendees * perPerson
	}
	if perRoom > 0 {
		perRoomTotal = perRoom
	}

	switch {
	case perPerson > 0 && perRoom > 0:
		if rule == domain.RuleLower {
			return RoomBase{PerHour: math.Min(perPersonTotal, perRoomTotal), Rule: domain.RuleLower}
		}
		return RoomBase{PerHour: math.Max(perPersonTotal, perRoomTotal), Rule: domain.RuleHigher}

	case perPerson > 0:
		return RoomBase{PerHour: perPersonTotal, Rule: domain.RulePerPerson}

	case perRoom > 0:
		return RoomBase{PerHour: perRoomTotal, Rule: domain.RulePerRoom}

	default:
		return RoomBase{PerHour: 0, Rule: domain.RuleNone}
	}
}
