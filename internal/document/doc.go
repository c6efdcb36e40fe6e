// Package document holds the format-agnostic model of a scene document: what
// the front-ends produce and the compiler consumes.
//
// Front-ends (the HCL reader, the legacy spreadsheet reader) translate their
// own syntax into these types, so nothing downstream knows or cares which
// syntax a document came from. The pipeline's two fatal error values live
// here as well; both describe defects in loaded documents rather than in any
// single reader.
package document
