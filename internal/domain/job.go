package domain

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

const CancelledByUserMessage = "Processing cancelled by user"

var SupportedYears = []int{1, 3, 5}

func ValidYears(years int) bool {
	return slices.Contains(SupportedYears, years)
}

type JobStatus struct {
	JobID                  string     `json:"jobId"`
	Ticker                 string     `json:"ticker"`
	TimeRange              int        `json:"timeRange"`
	FilingTypes            []string   `json:"filingTypes,omitempty"`
	Phase                  Phase      `json:"phase"`
	Progress               int        `json:"progress"`
	DocumentsFound         int        `json:"documentsFound"`
	DocumentsProcessed     int        `json:"documentsProcessed"`
	ChunksCreated          int        `json:"chunksCreated"`
	ChunksVectorized       int        `json:"chunksVectorized"`
	StartedAt              time.Time  `json:"startedAt"`
	CompletedAt            *time.Time `json:"completedAt"`
	ErrorMessage           *string    `json:"errorMessage"`
	EstimatedTimeRemaining *int       `json:"estimatedTimeRemaining"`
}

type JobReport struct {
	Job       JobStatus
	Documents []*DocumentRecord
}

var tickerPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,9}$`)

func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidTicker reports whether an already normalized ticker is well formed.
func ValidTicker(ticker string) bool {
	return tickerPattern.MatchString(ticker)
}
