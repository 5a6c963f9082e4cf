// Package executor carries out a PlanSet: it creates extension buckets on
// demand and moves each planned file into place.
//
// Functions:
//   - Execute(ctx, *PlanSet, Options) → error
//     In plan order: ensure bucket (single-level mkdir) → refuse an occupied
//     target → rename, falling back to copy + remove across filesystems.
//     The first failure stops the batch; files already moved stay moved.
package executor
