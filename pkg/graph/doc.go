// Package graph defines the attachment graph of a figure: an immutable DAG
// recording which part each part is anchored to, together with the shape
// parameters of every part. It is built once per figure and never mutated.
package graph
