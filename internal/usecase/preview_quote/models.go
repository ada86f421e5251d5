package preview_quote

// Request модель запроса на предварительный расчет цены
type Request struct {
	RoomID           string   // ID комнаты из конфигурации площадки
	Attendees        int      // Количество участников
	DurationHours    int      // Длительность бронирования в часах (1-12)
	EventDate        string   // Дата события "YYYY-MM-DD", опционально (для предупреждения о blackout)
	SelectedAddOnIDs []string // Выбранные опциональные add-on'ы
}

// LineItem строка раскладки по одному add-on'у
type LineItem struct {
	AddOnID        string  `json:"addOnId"`
	Name           string  `json:"name,omitempty"`
	Model          string  `json:"model,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	UnitAmount     float64 `json:"unitAmount"`
	Value          float64 `json:"value"`
	ValueFormatted string  `json:"valueFormatted"`
	Supported      bool    `json:"supported"`
}

// Response модель ответа с пятиступенчатой раскладкой цены
//
// Числовые поля не округлены; Formatted-поля - отображаемые суммы
// с символом валюты, округленные до двух знаков
type Response struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName,omitempty"`

	RoomBasePerHour float64 `json:"roomBasePerHour"`
	BaseRule        string  `json:"baseRule"`

	RoomBaseTotal    float64 `json:"roomBaseTotal"`
	InclusiveTotal   float64 `json:"inclusiveTotal"`
	BundlePrice      float64 `json:"bundlePrice"`
	OfferPrice       float64 `json:"offerPrice"`
	OptionalTotal    float64 `json:"optionalTotal"`
	ProvisionalPrice float64 `json:"provisionalPrice"`
	FinalPrice       float64 `json:"finalPrice"`

	RoomBaseTotalFormatted    string `json:"roomBaseTotalFormatted"`
	BundlePriceFormatted      string `json:"bundlePriceFormatted"`
	OfferPriceFormatted       string `json:"offerPriceFormatted"`
	ProvisionalPriceFormatted string `json:"provisionalPriceFormatted"`
	FinalPriceFormatted       string `json:"finalPriceFormatted"`

	IncludedItems []LineItem `json:"includedItems"`
	OptionalItems []LineItem `json:"optionalItems"`

	// Предупреждение: дата события попадает в blackout-период
	BlackoutWarning bool     `json:"blackoutWarning"`
	BlackoutReasons []string `json:"blackoutReasons,omitempty"`
}
