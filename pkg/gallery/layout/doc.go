// Package layout implements the lightbox layout engine.
//
// # Overview
//
// The engine is a pure geometry calculator: given an ordered item stream,
// per-item aspect ratios, a layout mode, and a container width, it computes
// an absolute pixel position and size for every item plus the total scroll
// height. It performs no I/O, never sorts its input, and is deterministic:
// identical inputs always produce identical results.
//
// # Algorithms
//
//   - List: one fixed-height row per item, full available width.
//   - Grid: strict row/column matrix with a caption strip under each cell.
//   - Adaptive: justified rows; each row's items are uniformly rescaled so
//     the row exactly fills the available width (greedy one-pass fill, no
//     retroactive rebalancing).
//   - Masonry: greedy shortest-column-first packing across a fixed column
//     count.
//   - Tag overview: locale-ordered groups of fixed-size tag cards with
//     full-width headers and a breakpoint-driven column count.
//   - People overview: person-card grid, optionally grouped with collapsible
//     sections.
//
// # Contract
//
// Callers are expected to withhold computation while the container width is
// unmeasured (non-positive). If such an input is submitted anyway the engine
// falls back to a safe default width rather than failing: a gallery with a
// suboptimal layout beats a gallery showing nothing. Malformed data degrades
// gracefully (missing ratios default to 1.0); a malformed calling contract
// (unknown mode or view kind) is an error.
package layout
