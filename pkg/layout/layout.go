// Package layout reconstructs the reading order of OCR text fragments taken from
// scanned pages of vertically set Japanese text laid out in one or two tiers.
//
// Every page arrives as an unordered set of positioned fragments. The package
// re-derives the order from geometry and emits logical text lines:
//
// - Page statistics: a document-wide column baseline plus per-page character
// height and empty-line width, all estimated with medians and means
// - Fragment filtering: only body-text fragments with a recognized string take part
// - Column assignment and ordering: column ascending, then X descending
// (right-to-left reading of vertical lines)
// - Line assembly: indentation, dialogue openings and blank separator lines
// - Document assembly: a fold over the pages carrying the Continuation flag that
// decides whether a page opens a new paragraph or continues the previous one
//
// Lines are plain strings. An empty string is a blank separator line and a leading
// ideographic space (U+3000) marks an indented paragraph.
//
// Main Functions:
//
// - Reconstruct: runs the whole pipeline over a Document
// - PreparePages: statistics, filtering and ordering for every page
// - AssemblePage: line assembly for a single prepared page
package layout
