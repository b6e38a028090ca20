// Package jasonify is the runtime for reflection-free JSON codecs.
//
// Codecs are generated ahead of time by the jasonify command from annotated
// struct types. A generated file registers one encode and one decode entry
// point per type with the default registry; at run time no reflection is
// involved. Encoding goes through a Writer that tracks comma placement per
// nesting level, and decoding pulls tokens from a Parser that keeps one
// character of lookahead.
//
// Decoding is lenient about structure: unknown fields are skipped, and a
// value whose JSON kind does not match the field leaves the field unset.
// Lexical errors (SyntaxError) and numbers that do not fit their field
// (NumberError) abort the decode.
//
// Typical usage:
//
//	//jasonify:json
//	type Order struct {
//		ID    string  `json:"id"`
//		Total float64 `json:"total"`
//	}
//
//	//go:generate go run github.com/reoring/jasonify/cmd/jasonify generate --pkg .
//
//	r, err := jasonify.Default()
//	data, err := r.Encode("shop.Order", &order)
//	o, err := jasonify.Unmarshal[Order](r, "shop.Order", data)
//
// The package also exposes Writer and Parser directly for hand-written
// codecs, and DecodeAny for documents without a generated type.
package jasonify
