package domain

import "time"

type DocumentRecord struct {
	ID              string     `db:"id"               json:"id"`
	Ticker          string     `db:"ticker"           json:"ticker"`
	FilingType      string     `db:"filing_type"      json:"filing_type"`
	AccessionNumber string     `db:"accession_number" json:"accession_number"`
	PeriodEnd       *time.Time `db:"period_end"       json:"period_end,omitempty"`
	FiledDate       time.Time  `db:"filed_date"       json:"filed_date"`
	DocumentURL     string     `db:"document_url"     json:"document_url"`
	StoragePath     string     `db:"storage_path"     json:"storage_path"`
	FileSize        int64      `db:"file_size"        json:"file_size"`
	Format          Format     `db:"document_format"  json:"document_format"`
	ContentHash     string     `db:"content_hash"     json:"content_hash"`
	Status          Status     `db:"processing_status" json:"processing_status"`
	ErrorMessage    *string    `db:"processing_error" json:"processing_error,omitempty"`
	CreatedAt       time.Time  `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"       json:"updated_at"`
}

type DocumentStatistics struct {
	Total          int            `json:"total_documents"`
	Processed      int            `json:"processed_documents"`
	Pending        int            `json:"pending_documents"`
	Failed         int            `json:"failed_documents"`
	ProcessingRate float64        `json:"processing_rate"`
	FilingTypes    map[string]int `json:"filing_types"`
}

type StorageStatistics struct {
	Backend    string              `json:"backend"`
	TotalFiles int                 `json:"total_files"`
	TotalBytes int64               `json:"total_size_bytes"`
	Documents  *DocumentStatistics `json:"database_stats"`
}
