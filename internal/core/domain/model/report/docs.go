// Package report assembles three-part text reports through interchangeable
// builders driven by a fixed director.
//
// The package includes:
//   - Report: the assembled header, content and footer
//   - Builder: the capability shared by all variants
//   - TextBuilder: stores each part verbatim
//   - HTMLBuilder: wraps the parts in <h1>, <p> and <footer> tags
//   - Director: runs the header -> content -> footer sequence
//   - Format: names a variant so adapters can pick a builder
//
// The same Director run produces different output depending only on which
// Builder executes it.
package report
