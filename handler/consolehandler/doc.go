// Package consolehandler writes console renderings to three writers:
// one for Fatal and Error, one for Warn, and one for Info and Debug. By
// default these are stderr, stderr and stdout.
//
// Writers that are not known to be safe for concurrent use are wrapped
// so that writes from different goroutines never interleave.
package consolehandler
