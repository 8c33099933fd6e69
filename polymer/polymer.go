// Package polymer implements the generic, SIMD-register-aligned byte buffer
// used to hold sequences of nucleotides, codons, or amino acids.
package polymer

import (
	"hash/maphash"
	"strings"
)

// Monomer is any single-byte symbol type punnable with a raw buffer byte
// (Nt, Cdn, or Aa from package symbol).
type Monomer interface {
	~byte
}

// regWidth is the SIMD register width (in bytes) that buffers over-allocate
// to, matching the reference implementation's YMM-register-aligned
// allocator.
const regWidth = 32

// Polymer is a resizable buffer of bytes punnable to M: a sequence of
// nucleotides, codons, or amino acids. The buffer always over-allocates to
// the next multiple of regWidth plus one extra register, and is zero
// padded, so buf[n] (one past the logical end) is always readable
// and zero -- a safe null terminator for code that treats the buffer as a
// C string.
type Polymer[M Monomer] struct {
	buf []byte // logical contents occupy buf[:n]; capacity is over-allocated and zeroed beyond n.
	n   int
}

// New returns an empty Polymer with capacity for at least count monomers.
func New[M Monomer](count int) Polymer[M] {
	var p Polymer[M]
	p.Reserve(count)
	return p
}

// roundedCap returns the smallest multiple of regWidth, plus one extra
// register, that is >= n.
func roundedCap(n int) int {
	rounded := ((n + regWidth - 1) / regWidth) * regWidth
	return rounded + regWidth
}

// Reserve ensures the buffer can hold at least n monomers without
// reallocating, preserving existing contents.
func (p *Polymer[M]) Reserve(n int) {
	if cap(p.buf) >= n+1 {
		return
	}
	newCap := roundedCap(n)
	newBuf := make([]byte, newCap)
	copy(newBuf, p.buf[:p.n])
	p.buf = newBuf
}

// Len returns the number of monomers currently stored.
func (p *Polymer[M]) Len() int { return p.n }

// Cap returns the number of monomers the buffer can hold without
// reallocating.
func (p *Polymer[M]) Cap() int {
	if len(p.buf) == 0 {
		return 0
	}
	return len(p.buf) - 1
}

// Empty reports whether the polymer holds zero monomers.
func (p *Polymer[M]) Empty() bool { return p.n == 0 }

// Clear resets the polymer to zero length without releasing its buffer.
func (p *Polymer[M]) Clear() {
	for i := 0; i < p.n; i++ {
		p.buf[i] = 0
	}
	p.n = 0
}

// At returns the monomer at position i.
func (p *Polymer[M]) At(i int) M { return M(p.buf[i]) }

// Set overwrites the monomer at position i.
func (p *Polymer[M]) Set(i int, m M) { p.buf[i] = byte(m) }

// Front returns the first monomer. Panics if the polymer is empty.
func (p *Polymer[M]) Front() M { return M(p.buf[0]) }

// Back returns the last monomer. Panics if the polymer is empty.
func (p *Polymer[M]) Back() M { return M(p.buf[p.n-1]) }

// PushBack appends a monomer, growing the buffer if necessary.
func (p *Polymer[M]) PushBack(m M) {
	p.Reserve(p.n + 1)
	p.buf[p.n] = byte(m)
	p.n++
}

// PopBack removes and returns the last monomer.
func (p *Polymer[M]) PopBack() M {
	p.n--
	m := M(p.buf[p.n])
	p.buf[p.n] = 0
	return m
}

// Bytes returns the raw byte view of the logical contents. The returned
// slice aliases the polymer's buffer and is invalidated by any mutating
// call.
func (p *Polymer[M]) Bytes() []byte { return p.buf[:p.n] }

// CBytes returns the null-terminated raw byte view: Bytes() plus the
// guaranteed-zero byte immediately following it.
func (p *Polymer[M]) CBytes() []byte { return p.buf[:p.n+1] }

// String renders the logical contents as a Go string.
func (p *Polymer[M]) String() string { return string(p.Bytes()) }

// Exo ("exonuclease/exoprotease") trims left monomers from the front and
// right monomers from the back, in place, without ever reallocating: it
// only needs to memmove the retained window down to the front of the
// buffer and shrink n.
func (p *Polymer[M]) Exo(left, right int) {
	keep := p.n - left - right
	if keep < 0 {
		keep = 0
	}
	copy(p.buf[0:keep], p.buf[left:left+keep])
	for i := keep; i < p.n; i++ {
		p.buf[i] = 0
	}
	p.n = keep
}

// Resize grows or shrinks the polymer to length n, padding new positions
// with fill.
func (p *Polymer[M]) Resize(n int, fill M) {
	p.Reserve(n)
	if n > p.n {
		for i := p.n; i < n; i++ {
			p.buf[i] = byte(fill)
		}
	} else {
		for i := n; i < p.n; i++ {
			p.buf[i] = 0
		}
	}
	p.n = n
}

// SwapBuffers exchanges the underlying storage of p and q in place -- the
// move-construction mechanism that lets Nts/Cdns/Aas hand off a buffer
// between symbol types without copying.
func (p *Polymer[M]) SwapBuffers(q *Polymer[M]) {
	p.buf, q.buf = q.buf, p.buf
	p.n, q.n = q.n, p.n
}

// Subclone returns an independent copy of the window [pos, pos+length).
// length is clamped to the available remainder.
func (p *Polymer[M]) Subclone(pos, length int) Polymer[M] {
	if length > p.n-pos {
		length = p.n - pos
	}
	var out Polymer[M]
	out.Reserve(length)
	copy(out.buf, p.buf[pos:pos+length])
	out.n = length
	return out
}

// Concat appends the contents of q to p.
func (p *Polymer[M]) Concat(q *Polymer[M]) {
	pos := p.n
	p.Resize(p.n+q.n, 0)
	copy(p.buf[pos:p.n], q.buf[:q.n])
}

// Equal reports whether p and q hold byte-identical contents.
func (p *Polymer[M]) Equal(q *Polymer[M]) bool {
	return string(p.Bytes()) == string(q.Bytes())
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the raw byte contents, suitable for use as a map
// key surrogate (e.g. string(p.Bytes())) or direct hashing.
func (p *Polymer[M]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.Write(p.Bytes())
	return h.Sum64()
}

// FromNormalized builds a Polymer by normalizing each byte of s with
// normalize, discarding any byte that normalizes to 0 -- the push_back
// filtering behavior of the reference Polymer(const char *) constructor.
func FromNormalized[M Monomer](s string, normalize func(byte) byte) Polymer[M] {
	var p Polymer[M]
	p.Reserve(len(s))
	for i := 0; i < len(s); i++ {
		c := normalize(s[i])
		if c != 0 {
			p.PushBack(M(c))
		}
	}
	return p
}

// FromRaw builds a Polymer directly from already-valid monomer bytes,
// performing no normalization or filtering.
func FromRaw[M Monomer](s string) Polymer[M] {
	var p Polymer[M]
	p.Reserve(len(s))
	p.n = len(s)
	copy(p.buf, s)
	return p
}

// trimmed returns s with surrounding whitespace removed. Nothing in the
// module calls it.
func trimmed(s string) string { return strings.TrimSpace(s) }
