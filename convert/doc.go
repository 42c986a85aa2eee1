// Package convert converts colors between packed 24-bit integers, hexadecimal
// strings, RGB triples and CIE L*a*b*.
//
// The forward pipeline runs
//
//	packed int -> RGB -> linear sRGB -> XYZ (D65) -> L*a*b*
//
// and each stage is exported on its own. Every function is pure and safe for
// concurrent use.
package convert
