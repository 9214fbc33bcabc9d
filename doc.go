// Package shortguid provides a short, URL-safe textual representation for
// 128-bit UUIDs.
//
// A ShortGuid renders the 16 bytes of a UUID as 22 characters of unpadded
// URL-safe base64 instead of the 36-character dashed hexadecimal form:
//
//	id, _ := shortguid.Parse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")
//	fmt.Println(id)            // yaZG05xhTLe_ze4lIsj2Mw
//	fmt.Println(id.UUID())     // c9a646d3-9c61-4cb7-bfcd-ee2522c8f633
//
// Parse accepts three syntaxes – the 22-character short form, the
// 36-character dashed hexadecimal form and the 32-character undashed
// hexadecimal form – and every value encodes back to the same canonical
// short form.  The long forms are input-only compatibility paths.
//
// ShortGuid is a plain 16-byte value: it is comparable, usable as a map key
// and safe to share between goroutines.  All operations work on their own
// inputs and never mutate shared state.
package shortguid
