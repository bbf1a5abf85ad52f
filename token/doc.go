// Package token provides the lexical pieces shared by the codecs: the
// variable length size field of the binary format, the URL escaping of
// the form format, and record splitting for the text formats.
package token
