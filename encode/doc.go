// Package encode encodes Values.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	// age=30
//	// name=alice
//	err := encode.Encode(v, os.Stdout, encode.EncodeFormat(format.INIFormat))
//
//	// age=30&name=alice
//	s, err := encode.Form(v)
//
//	d, err := encode.Binary(v)
//
// # Binary layout
//
// Every item is a one byte type tag followed by its payload. Integers
// and reals are 8 bytes, booleans and characters 1 byte, in the byte
// order given by ByteOrder (little endian by default). Strings, maps
// and arrays start with a size field counting bytes, entries or
// elements. Wide strings are UTF-32 code units. Map entries are
// written in ascending key order.
//
// # Related Packages
//
//   - github.com/signadot/univcont/parse - the decoders
//   - github.com/signadot/univcont/format - format names and MIME types
package encode
