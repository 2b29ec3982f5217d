// Package diagnostic provides structured warnings and errors collected while
// resolving and projecting a cube.
//
// Fatal problems are returned as Go errors by the packages that find them;
// diagnostics carry the findings that should be reported without aborting,
// for example a mapping entry that matches no column of any chunk.
package diagnostic
