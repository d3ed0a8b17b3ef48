package config

import _ "embed"

// Example is the annotated config written by `treetop init`.
//
//go:embed example.yaml
var Example []byte
