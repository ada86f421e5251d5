package domain

// Pricing models recognized in the add-on catalogue
const (
	ModelPerEvent  = "PER_EVENT"  // fixed amount per booking
	ModelPerPerson = "PER_PERSON" // amount x attendees
	ModelPerPeriod = "PER_PERIOD" // amount x elapsed time in Unit
	ModelPerUnit   = "PER_UNIT"   // valid catalogue data, not computable by this engine
)

// Period units. Only HOUR is computable; DAY and MINUTE are valid catalogue
// data but yield an unsupported line item.
const (
	UnitHour   = "HOUR"
	UnitDay    = "DAY"
	UnitMinute = "MINUTE"
)

// Room base tie-break rules
const (
	RuleHigher = "higher" // default when both rates are configured and rule is unset
	RuleLower  = "lower"
)

// Applied-rule labels for single-rate and unconfigured rooms
const (
	RulePerPerson = "perPerson"
	RulePerRoom   = "perRoom"
	RuleNone      = "none"
)

// Display conventions
// Ограничение длительности - соглашение UI, движок цен его не навязывает
const (
	MinDurationHours = 1
	MaxDurationHours = 12
)

// Business validation constants (венчурная конфигурация, не движок цен)
const (
	MaxNameLength   = 200
	MaxReasonLength = 500
	MaxCapacity     = 10000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
