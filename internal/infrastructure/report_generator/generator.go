package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	titleStyle  = props.Text{Top: 2, Size: 16, Style: fontstyle.Bold, Align: align.Center}
	labelStyle  = props.Text{Top: 1, Size: 9, Style: fontstyle.Bold}
	valueStyle  = props.Text{Top: 1, Size: 9}
	headerStyle = props.Text{Top: 1.5, Size: 8, Style: fontstyle.Bold, Align: align.Center}
	cellStyle   = props.Text{Top: 1, Size: 8, Align: align.Center}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport writes a PDF summary of a finished ingestion job to outputPath.
func (g *Generator) GenerateReport(outputPath string, report *domain.JobReport) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(14, "Filings ingestion report: "+report.Job.Ticker, titleStyle))
	m.AddRows(summaryRows(report.Job)...)
	m.AddRows(text.NewRow(8, ""))
	m.AddRow(8,
		text.NewCol(2, "Type", headerStyle),
		text.NewCol(3, "Accession", headerStyle),
		text.NewCol(2, "Filed", headerStyle),
		text.NewCol(2, "Period end", headerStyle),
		text.NewCol(1, "Format", headerStyle),
		text.NewCol(2, "Size, bytes", headerStyle),
	)

	for _, document := range report.Documents {
		m.AddRow(6,
			text.NewCol(2, document.FilingType, cellStyle),
			text.NewCol(3, document.AccessionNumber, cellStyle),
			text.NewCol(2, formatDate(&document.FiledDate), cellStyle),
			text.NewCol(2, formatDate(document.PeriodEnd), cellStyle),
			text.NewCol(1, string(document.Format), cellStyle),
			text.NewCol(2, strconv.FormatInt(document.FileSize, 10), cellStyle),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func summaryRows(job domain.JobStatus) []core.Row {
	completed := "-"
	if job.CompletedAt != nil {
		completed = job.CompletedAt.Format(time.RFC3339)
	}

	fields := [][2]string{
		{"Job", job.JobID},
		{"Time range", fmt.Sprintf("%d year(s)", job.TimeRange)},
		{"Phase", job.Phase.String()},
		{"Documents found", strconv.Itoa(job.DocumentsFound)},
		{"Documents stored", strconv.Itoa(job.DocumentsProcessed)},
		{"Started", job.StartedAt.Format(time.RFC3339)},
		{"Completed", completed},
	}

	rows := make([]core.Row, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, summaryRow(field[0], field[1]))
	}

	return rows
}

func summaryRow(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(4, label, labelStyle),
		text.NewCol(8, value, valueStyle),
	)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
