// Package hepkit turns harvested bibliographic metadata for physics
// literature into records following the HEP literature schema. The per-format
// parsers live in the convert package, source document shapes under schema.
package hepkit

const (
	AppName = "hepkit"
	Version = "0.2.0"
)
