// Package transform provides string normalisers for use with
// [livestock.Validated.Transform] and [livestock.OptionalValidated.Transform],
// so that values are cleaned up before they are stored and validated.
package transform
