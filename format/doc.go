// Package format names the wire formats a Value can be encoded in and
// maps them to file suffixes and MIME types.
package format
