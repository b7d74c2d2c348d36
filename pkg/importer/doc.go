// Package importer merges externally supplied client rows into an existing
// client list.
//
// Rows are validated with go-playground/validator, then matched against the
// current clients with the dedup package. A row merges into an existing
// client when the full name matches and at least one contact field or the
// parent name matches as well. Merging fills empty contact fields and attaches
// the row's placement; the enrollment limits of the club package apply and
// violations are reported per row. Unmatched rows create new clients.
//
// File parsing is left to the caller.
package importer
