// Package extract defines the contract with the extraction library and its
// ytdlp-backed implementation. The contract is exactly two operations: report
// the metadata and renditions available for a URL, and fetch the bytes of one
// chosen rendition into a directory. Everything protocol- or media-related
// lives behind this boundary.
package extract
