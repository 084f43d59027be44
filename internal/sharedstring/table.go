// Package sharedstring implements SMILE's two back-reference tables: the
// writer-side table (string -> index, used to detect "have I seen this
// already") and the reader-side table (index -> string, used to resolve a
// back-reference token). Both share the same capacity and reset rule so
// that an encoder and a decoder fed the same token stream stay in
// lockstep, which is the correctness property the whole scheme depends on.
package sharedstring

import (
	"github.com/jhosmer/gosmile/internal/bitutil"
	"github.com/jhosmer/gosmile/token"
)

// entry is one writer-side bucket occupant: the Java-mandated hash bucket
// key, an xxhash fingerprint used as a fast-reject before a full string
// compare, the string itself, and its insertion index.
type entry struct {
	javaHash    int32
	fingerprint uint64
	value       string
	index       int
}

// WriterTable is the encoder-side half of a shared-string table: given a
// candidate string, it reports whether that string was already inserted
// and at what index, and performs the insert-or-reset dance otherwise.
type WriterTable struct {
	buckets map[int32][]entry
	count   int
}

// NewWriterTable creates an empty writer-side table.
func NewWriterTable() *WriterTable {
	return &WriterTable{buckets: make(map[int32][]entry)}
}

// Lookup reports the index of s if it has already been inserted.
func (t *WriterTable) Lookup(s string) (int, bool) {
	h := bitutil.JavaStringHash(s)
	fp := bitutil.Fingerprint(s)
	for _, e := range t.buckets[h] {
		if e.fingerprint != fp {
			continue
		}
		if e.value == s {
			return e.index, true
		}
	}

	return 0, false
}

// Insert adds s to the table, performing a full reset first if the table is
// already at token.MaxSharedEntries. It returns the index s was inserted
// at. The caller is responsible for checking eligibility (UTF-8 length)
// and for not inserting a string that Lookup already found.
func (t *WriterTable) Insert(s string) int {
	if t.count >= token.MaxSharedEntries {
		t.Reset()
	}

	h := bitutil.JavaStringHash(s)
	idx := t.count
	t.buckets[h] = append(t.buckets[h], entry{
		javaHash:    h,
		fingerprint: bitutil.Fingerprint(s),
		value:       s,
		index:       idx,
	})
	t.count++

	return idx
}

// Reset clears the table. Called automatically by Insert at capacity, and
// exposed so a new document (or a second header mid-stream) can force a
// reset explicitly.
func (t *WriterTable) Reset() {
	t.buckets = make(map[int32][]entry)
	t.count = 0
}

// Len returns the number of strings currently tracked.
func (t *WriterTable) Len() int { return t.count }

// ReaderTable is the decoder-side half: index -> string, populated in the
// same order the writer inserted them.
type ReaderTable struct {
	entries []string
}

// NewReaderTable creates an empty reader-side table.
func NewReaderTable() *ReaderTable {
	return &ReaderTable{entries: make([]string, 0, 64)}
}

// Insert appends s as the next entry, resetting first if the table is at
// capacity. Returns the index s was inserted at.
func (t *ReaderTable) Insert(s string) int {
	if len(t.entries) >= token.MaxSharedEntries {
		t.Reset()
	}

	t.entries = append(t.entries, s)

	return len(t.entries) - 1
}

// Lookup resolves a back-reference index to its string. ok is false if the
// index is out of range, which the caller must treat as a decode error.
func (t *ReaderTable) Lookup(index int) (string, bool) {
	if index < 0 || index >= len(t.entries) {
		return "", false
	}

	return t.entries[index], true
}

// Reset clears the table.
func (t *ReaderTable) Reset() {
	t.entries = t.entries[:0]
}

// Len returns the number of strings currently tracked.
func (t *ReaderTable) Len() int { return len(t.entries) }

// Eligible reports whether s is short enough to participate in a
// shared-string table (either one; both share the same 64-byte ceiling).
func Eligible(s string) bool {
	return len(s) <= token.MaxShortStringBytes
}
