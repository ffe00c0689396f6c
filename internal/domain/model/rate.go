package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedBase means a base currency is absent even from the terminal
// synthetic table, so no data exists at any tier.
var ErrUnsupportedBase = errors.New("unsupported base currency")

// RateTable holds every rate a provider returned for one base currency.
// Invariant: Rates[Base] == 1 when present, all values strictly positive.
type RateTable struct {
	Base      Currency             `json:"base"`
	Rates     map[Currency]float64 `json:"rates"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// RateQuote is a single resolved rate for a (from, to) pair.
type RateQuote struct {
	From        Currency  `json:"from"`
	To          Currency  `json:"to"`
	Rate        float64   `json:"rate"`
	LastUpdated time.Time `json:"last_updated"`
}

// ConversionResult is the outcome of converting an amount at a resolved rate.
type ConversionResult struct {
	Amount      float64   `json:"amount"`
	Rate        float64   `json:"rate"`
	LastUpdated time.Time `json:"last_updated"`
}

// RatePoint is one day in a historical series. Date is an ISO-8601 calendar
// date without a time component.
type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// RateHistory is an ordered oldest-to-newest series for a pair, with
// Days+1 points ending at today.
type RateHistory struct {
	From   Currency    `json:"from"`
	To     Currency    `json:"to"`
	Points []RatePoint `json:"rates"`
	Period string      `json:"period"`
}

// CurrencyPair identifies a directed conversion pair.
type CurrencyPair struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
}

// String renders the pair in the cache-key form used throughout the service.
func (p CurrencyPair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}
