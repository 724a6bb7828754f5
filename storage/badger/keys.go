package badger

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Key prefixes for different data types
const (
	callRecordPrefix   = "calrec"
	callUploadedPrefix = "calrecu"
)

// makeCallRecordKey generates a key for a call record by ID.
func makeCallRecordKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", callRecordPrefix, id))
}

// makeCallUploadedKey generates a composite key for the upload-time index.
// Format: prefix:timestamp:id
func makeCallUploadedKey(uploadedAt time.Time, id string) []byte {
	prefix := callUploadedPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(id) // 8 bytes for timestamp + ID string
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// makePartialCallUploadedKey generates a partial key for upload-time queries.
// Format: prefix:timestamp
func makePartialCallUploadedKey(uploadedAt time.Time) []byte {
	prefix := callUploadedPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	return buf
}
