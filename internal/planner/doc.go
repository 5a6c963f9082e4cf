// Package planner scans a source directory and decides, before anything is
// moved, where every eligible file goes.
//
// Types:
//   - Options (immutable build inputs)
//   - Plan (one file: source path, resolved name, extension bucket)
//   - PlanSet (destination root + ordered plans)
//
// Functions:
//   - OptionsFromConfig(cfg) → Options
//   - Build(Options) → *PlanSet
//     Validate roots → list source (non-recursive) → filter regular,
//     non-hidden entries → bucket by extension → resolve names.
//     Any failure aborts the build; no partial PlanSet is returned.
package planner
