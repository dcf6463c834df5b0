package playbook

import (
	"strconv"
	"time"
)

// runIDLayout formats the run identifier, e.g. 2016-11-08-16-04-05.
const runIDLayout = "2006-01-02-15-04-05"

// Run identifies a single playbook compilation.
type Run struct {
	// ID scopes every output path written by the run.
	ID string
	// Timestamp is the run time in epoch milliseconds, handed to the enrich
	// job as its ETL timestamp.
	Timestamp string
}

// NewRun derives the run identifier and timestamp from t.
func NewRun(t time.Time) Run {
	return Run{
		ID:        t.Format(runIDLayout),
		Timestamp: strconv.FormatInt(t.UnixMilli(), 10),
	}
}
