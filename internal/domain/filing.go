package domain

import "time"

// FilingDescriptor is a single filing found in the registry index. It is never mutated after
// discovery produced it.
type FilingDescriptor struct {
	AccessionNumber string
	FilingType      string
	FilingDate      time.Time
	PeriodEnd       *time.Time
	DocumentURL     string
	Ticker          string
	CompanyName     string
	CIK             string
	Size            int64 // 0 when the index does not report it
}

type Company struct {
	Ticker string `db:"ticker" json:"ticker"`
	Name   string `db:"name"   json:"name"`
	CIK    string `db:"cik"    json:"cik"`
}

type TickerValidation struct {
	Ticker      string   `json:"ticker"`
	Valid       bool     `json:"isValid"`
	CompanyName string   `json:"companyName,omitempty"`
	Suggestions []string `json:"suggestions"`
}
