// Package api implements the HTTP boundary of the task analyzer: request
// decoding, strategy selection, and response shaping. It contains no
// decision logic of its own: batch policy and ranking live in the service
// and domain layers.
package api
