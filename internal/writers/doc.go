// Package writers turns estimated membranes into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV rows, JSON, PDB overlays).
//   - The search engine stays domain-only; App stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
