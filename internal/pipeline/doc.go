// Package pipeline runs one sort from a finalized Config and reports the
// outcome.
//
// Types:
//   - RunStats (Total, Moved, Renamed, Copied, BucketsCreated, Bytes)
//
// Functions:
//   - Run(ctx, cfg, log) → (RunStats, error)
//     Lock source → build plan → dry-run table or execute moves with
//     progress → summary. Errors are returned, never turned into exits.
package pipeline
