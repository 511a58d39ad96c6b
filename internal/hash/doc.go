// Package hash provides the streaming content fingerprint used for
// dictionary checksums.
//
// # MD5
//
// Dictionary checksums use MD5 because that is the digest the existing
// ecosystem of reference headers carries (the @SQ M5 tag and derived
// dictionary fingerprints). The requirement here is cross-implementation
// reproducibility, not collision resistance:
//
//   - two dictionaries with identical records in identical order must
//     produce identical fingerprints
//   - the rendered form is always 32 lowercase hex characters
//
// # Usage
//
//	f := hash.NewFingerprint()
//	f.WriteString("chr1")
//	f.WriteString("248956422")
//	sum := f.HexSum()
package hash
