// ABOUTME: Fixed-capacity byte ring buffer
// ABOUTME: Head/tail/count FIFO with two-copy wrap-around
package player

// ring is a bounded byte FIFO. It carries no lock of its own: the Player
// serializes access under its buffer mutex so the condition-variable
// signaling stays with the feed and worker code.
type ring struct {
	buf   []byte
	head  int // write cursor
	tail  int // read cursor
	count int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]byte, capacity)}
}

// Write copies at most min(len(data), Space()) bytes and returns the count.
// Never blocks.
func (r *ring) Write(data []byte) int {
	n := len(data)
	if n > r.Space() {
		n = r.Space()
	}
	if n == 0 {
		return 0
	}

	first := len(r.buf) - r.head
	if n <= first {
		copy(r.buf[r.head:], data[:n])
		r.head = (r.head + n) % len(r.buf)
	} else {
		copy(r.buf[r.head:], data[:first])
		copy(r.buf, data[first:n])
		r.head = n - first
	}

	r.count += n
	return n
}

// Read copies at most min(len(dst), Len()) bytes into dst and returns the
// count. A zero return means the buffer is empty.
func (r *ring) Read(dst []byte) int {
	n := len(dst)
	if n > r.count {
		n = r.count
	}
	if n == 0 {
		return 0
	}

	first := len(r.buf) - r.tail
	if n <= first {
		copy(dst[:n], r.buf[r.tail:])
		r.tail = (r.tail + n) % len(r.buf)
	} else {
		copy(dst[:first], r.buf[r.tail:])
		copy(dst[first:n], r.buf)
		r.tail = n - first
	}

	r.count -= n
	return n
}

// Len returns the number of buffered bytes.
func (r *ring) Len() int {
	return r.count
}

// Space returns the number of writable bytes.
func (r *ring) Space() int {
	return len(r.buf) - r.count
}

// Cap returns the fixed capacity.
func (r *ring) Cap() int {
	return len(r.buf)
}

// Clear resets the buffer to empty.
func (r *ring) Clear() {
	r.head = 0
	r.tail = 0
	r.count = 0
}
