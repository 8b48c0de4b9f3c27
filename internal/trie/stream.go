package trie

import (
	"fmt"
	"io"
)

// DefaultBufferSize is used by callers that don't have an opinion on chunk
// size; 1 MiB amortizes read syscalls well for the dump-sized wordlists
// this trie is built to ingest.
const DefaultBufferSize = 1 << 20

// isLineDelim reports whether b is one of the byte values that separates
// records: any run of '\n' or '\r' bytes, so CRLF and bare CR are both
// treated as a single delimiter.
func isLineDelim(b byte) bool {
	return b == '\n' || b == '\r'
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func trimASCIISpace(b []byte) []byte {
	start := 0
	for start < len(b) && isASCIISpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isASCIISpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

// BulkInsertFromStream reads r in fixed-size chunks of bufferSize bytes,
// splits it into records delimited by any run of '\n'/'\r' bytes, trims
// each record of leading/trailing ASCII whitespace, skips empty records,
// and inserts every remaining record as a byte string. A trailing partial
// record at a chunk boundary is carried forward and prepended to the next
// chunk; if the stream ends with a non-empty carry, it is inserted as a
// final record.
//
// The returned count is the number of Insert calls made, including
// duplicates — a record that was already present still counts, matching
// this repo's choice on an intentionally ambiguous point in the original
// design: the count tracks ingest attempts, not net growth of Size().
//
// bufferSize must be positive; BulkInsertFromStream does not itself enforce
// a minimum (callers wanting a floor, e.g. to avoid pathological syscall
// counts, should clamp before calling — the embedding layer's config does
// this, see radix-hw/config).
func (t *Trie) BulkInsertFromStream(r io.Reader, bufferSize int) (int, error) {
	if bufferSize <= 0 {
		return 0, fmt.Errorf("bulk insert: buffer size must be positive, got %d", bufferSize)
	}

	buf := make([]byte, bufferSize)
	var carry []byte
	count := 0

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if len(carry) > 0 {
				combined := make([]byte, 0, len(carry)+len(chunk))
				combined = append(combined, carry...)
				combined = append(combined, chunk...)
				carry = carry[:0]
				count += t.insertRecords(combined, &carry)
			} else {
				count += t.insertRecords(chunk, &carry)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("bulk insert: %w", err)
		}
	}

	if len(carry) > 0 {
		if rec := trimASCIISpace(carry); len(rec) > 0 {
			t.Insert(rec)
			count++
		}
	}

	return count, nil
}

// insertRecords splits chunk into records on delimiter runs, inserting each
// complete record and leaving any trailing undelimited remainder in
// *leftover for the next chunk (or the final flush) to pick up.
func (t *Trie) insertRecords(chunk []byte, leftover *[]byte) int {
	count := 0
	start := 0
	i := 0
	for i < len(chunk) {
		if isLineDelim(chunk[i]) {
			if rec := trimASCIISpace(chunk[start:i]); len(rec) > 0 {
				t.Insert(rec)
				count++
			}
			for i < len(chunk) && isLineDelim(chunk[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(chunk) {
		*leftover = append((*leftover)[:0], chunk[start:]...)
	}
	return count
}
