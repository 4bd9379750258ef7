// Package fetcher downloads a single image over HTTP(S) into a directory,
// naming the file after a record and choosing the extension from the
// response Content-Type.
package fetcher
