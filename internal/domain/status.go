package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Format string

const (
	FormatHTML Format = "HTML"
	FormatPDF  Format = "PDF"
	FormatXBRL Format = "XBRL"
	FormatTXT  Format = "TXT"
)
