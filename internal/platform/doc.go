// Package platform contains OS integration glue: the scratch staging
// directory used by download actions, and open/reveal helpers for handing
// finished files to the user.
package platform
