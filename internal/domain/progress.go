package domain

const (
	ProgressDownloading = "downloading"
	ProgressCompleted   = "completed"
)

type Progress struct {
	Phase   string
	Current int
	Total   int
}

type ProgressFunc func(Progress)

// Percent returns min(100, floor(current/total*100)); an empty batch counts as done.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 100
	}

	return min(100, p.Current*100/p.Total)
}
