package api

import (
	json "github.com/goccy/go-json"
)

// Codec marshals messages as JSON. It is registered under the name "json",
// replacing connect's protobuf-only JSON codec, so plain Go structs can be
// sent with the Connect protocol as application/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
