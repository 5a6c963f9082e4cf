// Package naming decides where a file lands inside the destination tree:
// which extension bucket it belongs to and which name it takes there.
//
// Types:
//   - Resolver (per-build claim set over bucket paths)
//
// Functions:
//   - Extension(name, foldCase) → bucket name, "indefinite" when none
//   - DubbedName(counter, name) → "dubbed_<counter>-<name>"
//   - (*Resolver).Resolve(name, bucketDir, allowRename) → final name
//     Probes the filesystem at call time plus every name already handed out
//     by the same Resolver, so one build never plans two files onto one path.
package naming
