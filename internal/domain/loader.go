package domain

// LoadTarget is the immutable scope a load run operates under, produced by
// the bootstrapper and threaded explicitly through every load call.
type LoadTarget struct {
	TenantID   string
	ExamTypeID string
}

// LoadStats are the running counters of a load run. Per-record failures
// increment Errors and never abort the run.
type LoadStats struct {
	FilesProcessed int
	Migrated       int
	Skipped        int
	Errors         int
}

// SectionCount is one row of the post-run verification summary.
type SectionCount struct {
	Section    string
	Subsection string
	Count      int
}

// Summary is the post-run verification report: persisted counts grouped by
// section/subsection plus the tenant total.
type Summary struct {
	Sections []SectionCount
	Total    int
}
