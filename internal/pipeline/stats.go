package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total          int   // Files planned.
	Moved          int   // Files moved successfully.
	Renamed        int   // Planned files whose name was changed to avoid a collision.
	Copied         int   // Moves that fell back to copy + remove.
	BucketsCreated int   // Bucket directories created.
	Bytes          int64 // Bytes moved.
}

// Remaining returns how many planned files were not moved.
func (s *RunStats) Remaining() int {
	return s.Total - s.Moved
}
