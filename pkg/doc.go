// Package pkg provides the core libraries for Lightbox gallery layout.
//
// # Overview
//
// Lightbox computes virtualized, adaptive gallery layouts for image
// libraries. The pkg directory is organized into these areas:
//
//  1. [gallery] - Domain logic (layout modes, grouping, scheduling, windowing)
//  2. [library] - Catalog scanning and persistence
//  3. [cache] / [viewstate] - Infrastructure (result caching, collapse state)
//  4. [pipeline] - Orchestration (scan → layout → render)
//  5. [render] - Preview artifacts (SVG, JSON)
//
// # Architecture
//
// The typical data flow through Lightbox:
//
//	Image Directory / Catalog
//	         ↓
//	library.Scan (dimensions, EXIF orientation)
//	         ↓
//	gallery/layout.Compute (list, grid, adaptive, masonry)
//	         ↓
//	gallery/window.Visible (viewport slice)
//	         ↓
//	render (SVG / JSON artifacts)
//
// The pipeline package ties the stages together with per-stage caching;
// gallery/schedule serializes recomputation for interactive hosts.
package pkg
