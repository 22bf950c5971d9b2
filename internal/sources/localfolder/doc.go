// Package localfolder implements the local docs-folder document source.
//
// Documents are enumerated with a flat directory listing filtered to
// supported extensions. An optional fsnotify watcher reports folder
// changes so callers can trigger an incremental run without polling.
package localfolder
