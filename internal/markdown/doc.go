// Package markdown parses the constrained markdown dialect produced by the
// document-generation prompts into a flat sequence of typed blocks.
//
// The dialect covers ATX headings (levels 1-4), paragraphs with inline bold
// spans, pipe-delimited tables, and single-level ordered/unordered list items.
// It is intentionally not CommonMark: lines wrapped entirely in bold markers
// are promoted to level-3 headings, and a pipe-delimited run that does not
// yield at least two data rows degrades to plain paragraphs instead of a table.
package markdown
