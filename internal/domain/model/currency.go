package model

// Currency is a 3-letter uppercase ISO-4217 style code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

// CurrencyInfo is a catalog entry served to clients.
type CurrencyInfo struct {
	Code Currency `json:"code"`
	Name string   `json:"name"`
}

var catalog = []CurrencyInfo{
	{Code: "USD", Name: "US Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Name: "Chinese Yuan"},
	{Code: "SEK", Name: "Swedish Krona"},
	{Code: "NZD", Name: "New Zealand Dollar"},
	{Code: "MXN", Name: "Mexican Peso"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "HKD", Name: "Hong Kong Dollar"},
	{Code: "NOK", Name: "Norwegian Krone"},
	{Code: "KRW", Name: "South Korean Won"},
	{Code: "TRY", Name: "Turkish Lira"},
	{Code: "RUB", Name: "Russian Ruble"},
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "BRL", Name: "Brazilian Real"},
	{Code: "ZAR", Name: "South African Rand"},
	{Code: "PLN", Name: "Polish Zloty"},
	{Code: "CZK", Name: "Czech Koruna"},
	{Code: "DKK", Name: "Danish Krone"},
	{Code: "HUF", Name: "Hungarian Forint"},
	{Code: "ILS", Name: "Israeli Shekel"},
	{Code: "CLP", Name: "Chilean Peso"},
	{Code: "PHP", Name: "Philippine Peso"},
	{Code: "AED", Name: "UAE Dirham"},
	{Code: "COP", Name: "Colombian Peso"},
	{Code: "SAR", Name: "Saudi Riyal"},
	{Code: "MYR", Name: "Malaysian Ringgit"},
	{Code: "RON", Name: "Romanian Leu"},
	{Code: "THB", Name: "Thai Baht"},
	{Code: "BGN", Name: "Bulgarian Lev"},
	{Code: "HRK", Name: "Croatian Kuna"},
	{Code: "ISK", Name: "Icelandic Krona"},
	{Code: "PKR", Name: "Pakistani Rupee"},
	{Code: "EGP", Name: "Egyptian Pound"},
	{Code: "QAR", Name: "Qatari Riyal"},
	{Code: "KWD", Name: "Kuwaiti Dinar"},
	{Code: "BHD", Name: "Bahraini Dinar"},
	{Code: "OMR", Name: "Omani Rial"},
	{Code: "JOD", Name: "Jordanian Dinar"},
	{Code: "LBP", Name: "Lebanese Pound"},
	{Code: "TND", Name: "Tunisian Dinar"},
	{Code: "DZD", Name: "Algerian Dinar"},
	{Code: "MAD", Name: "Moroccan Dirham"},
	{Code: "XOF", Name: "West African CFA Franc"},
	{Code: "XAF", Name: "Central African CFA Franc"},
}

var catalogIndex = func() map[Currency]CurrencyInfo {
	index := make(map[Currency]CurrencyInfo, len(catalog))
	for _, info := range catalog {
		index[info.Code] = info
	}
	return index
}()

// Catalog returns the static currency catalog in its canonical order.
func Catalog() []CurrencyInfo {
	out := make([]CurrencyInfo, len(catalog))
	copy(out, catalog)
	return out
}

// IsSupported reports whether the code is known to the static catalog.
func (c Currency) IsSupported() bool {
	_, ok := catalogIndex[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}
