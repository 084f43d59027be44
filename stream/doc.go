// Package stream frames a sequence of independently encoded SMILE
// documents onto a single io.Writer/io.Reader, the way the teacher's
// blob.BlobSet concatenates independently encoded time-series blobs under
// one shared container: each document gets its own header and its own
// pair of shared-string tables, and the 0xFF end-of-content marker between
// documents is what tells a Reader where one ends and the next begins.
package stream
