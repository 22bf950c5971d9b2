// Package gdrive implements the Google Drive document source.
//
// Listing uses files.list with a MIME-type query restricted to the
// supported meeting-record formats; fetching downloads file content
// through files.get. All API calls pass a shared token-bucket rate
// limiter. Token acquisition is out of scope: the source consumes a
// stored OAuth token file.
package gdrive
