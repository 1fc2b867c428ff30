// Package model defines the transient session records shared across the app:
// video metadata, format options, download results, and the task status enum.
// Records are plain values created once per fetch/download and replaced
// wholesale; nothing here is persisted.
package model
