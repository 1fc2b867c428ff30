// Package download runs the download step of the flow: one rendition, one
// fresh scratch directory, one result. The extraction library does the byte
// work; this package owns the task lifecycle and result collection.
package download
