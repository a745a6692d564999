package driver

import "unsafe"

// GoString copies the NUL-terminated string at p into a Go string.
// A nil pointer yields the empty string. Validity of the pointed-at memory
// is the caller's contract; GoString reads up to and excluding the first
// NUL byte and never past it.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}

// CString returns a pointer to a NUL-terminated copy of s.
// The pointer keeps its backing storage reachable, so embedding it in a
// record is enough to keep the bytes alive for the duration of a call.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}
