// Package jsonx is the JSON configuration shared by point files and command
// output.
package jsonx

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = api.Marshal
	Unmarshal     = api.Unmarshal
	MarshalIndent = api.MarshalIndent
	NewEncoder    = api.NewEncoder
	NewDecoder    = api.NewDecoder
)
