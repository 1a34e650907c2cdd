package datagrid

import "sort"

// SectionList is an ordered run of variably sized sections along one grid
// axis (rows, body columns or row-header columns).
//
// Offsets are cached and rebuilt lazily. Every mutation lowers the dirty
// watermark to the first affected section, and every read rebuilds the cache
// from that watermark before answering, so a query never sees a mix of
// pre- and post-mutation offsets.
type SectionList struct {
	sizes   []float32
	offsets []float32 // offsets[i] is the leading edge of section i
	dirty   int       // first index whose cached offset is stale
	total   float32
}

// SectionMatch is the result of a position lookup.
type SectionMatch struct {
	Index int     // Section containing the position
	Delta float32 // Distance from the section's leading edge
}

// NewSectionList creates a section list from the given sizes.
// Negative sizes are treated as zero.
func NewSectionList(sizes ...float32) *SectionList {
	s := &SectionList{}
	s.Reset(sizes)
	return s
}

// NewUniformSectionList creates count sections of the same size.
func NewUniformSectionList(count int, size float32) *SectionList {
	sizes := make([]float32, max(count, 0))
	for i := range sizes {
		sizes[i] = size
	}
	return NewSectionList(sizes...)
}

// Reset replaces every section.
func (s *SectionList) Reset(sizes []float32) {
	s.sizes = make([]float32, len(sizes))
	for i, size := range sizes {
		s.sizes[i] = max(size, 0)
	}
	s.offsets = make([]float32, len(sizes))
	s.dirty = 0
}

// Count returns the number of sections.
func (s *SectionList) Count() int {
	return len(s.sizes)
}

// Size returns the size of section i, or 0 if i is out of range.
func (s *SectionList) Size(i int) float32 {
	if i < 0 || i >= len(s.sizes) {
		return 0
	}
	return s.sizes[i]
}

// Sizes returns a copy of all section sizes.
func (s *SectionList) Sizes() []float32 {
	out := make([]float32, len(s.sizes))
	copy(out, s.sizes)
	return out
}

// Offset returns the leading edge of section i.
// Offset(Count()) is the total size.
func (s *SectionList) Offset(i int) float32 {
	s.refresh()
	if i <= 0 || len(s.sizes) == 0 {
		return 0
	}
	if i >= len(s.sizes) {
		return s.total
	}
	return s.offsets[i]
}

// TotalSize returns the sum of all section sizes.
func (s *SectionList) TotalSize() float32 {
	s.refresh()
	return s.total
}

// Resize changes the size of section i and returns the signed size delta.
func (s *SectionList) Resize(i int, size float32) float32 {
	if i < 0 || i >= len(s.sizes) {
		return 0
	}
	size = max(size, 0)
	delta := size - s.sizes[i]
	s.sizes[i] = size
	s.invalidate(i + 1)
	return delta
}

// Insert adds a section of the given size before index i.
// An index past the end appends.
func (s *SectionList) Insert(i int, size float32) {
	i = clamp(i, 0, len(s.sizes))
	s.sizes = append(s.sizes, 0)
	copy(s.sizes[i+1:], s.sizes[i:])
	s.sizes[i] = max(size, 0)
	s.offsets = append(s.offsets, 0)
	s.invalidate(i)
}

// Remove deletes section i.
func (s *SectionList) Remove(i int) {
	if i < 0 || i >= len(s.sizes) {
		return
	}
	s.sizes = append(s.sizes[:i], s.sizes[i+1:]...)
	s.offsets = s.offsets[:len(s.sizes)]
	s.invalidate(i)
}

// Move relocates section from to index to, shifting the ones in between.
func (s *SectionList) Move(from, to int) {
	n := len(s.sizes)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	size := s.sizes[from]
	if from < to {
		copy(s.sizes[from:to], s.sizes[from+1:to+1])
	} else {
		copy(s.sizes[to+1:from+1], s.sizes[to:from])
	}
	s.sizes[to] = size
	s.invalidate(min(from, to))
}

func (s *SectionList) invalidate(from int) {
	if from < s.dirty {
		s.dirty = from
	}
	if s.dirty < 0 {
		s.dirty = 0
	}
}

// refresh rebuilds stale offsets and the total.
func (s *SectionList) refresh() {
	n := len(s.sizes)
	if s.dirty >= n+1 {
		return
	}
	start := s.dirty
	if start > n {
		start = n
	}
	var off float32
	if start > 0 {
		off = s.offsets[start-1] + s.sizes[start-1]
	}
	for i := start; i < n; i++ {
		s.offsets[i] = off
		off += s.sizes[i]
	}
	s.total = off
	s.dirty = n + 1
}

// FindSectionIndex returns the section containing pos and the offset of pos
// from that section's leading edge. It reports false when pos is negative,
// at or beyond the total size, or the list is empty.
func FindSectionIndex(s *SectionList, pos float32) (SectionMatch, bool) {
	if s == nil || pos < 0 {
		return SectionMatch{}, false
	}
	s.refresh()
	n := len(s.sizes)
	if n == 0 || pos >= s.total {
		return SectionMatch{}, false
	}

	// First section whose trailing edge lies past pos. Zero-sized sections
	// never contain a position and are skipped by the strict comparison.
	i := sort.Search(n, func(i int) bool {
		return s.offsets[i]+s.sizes[i] > pos
	})
	if i >= n {
		return SectionMatch{}, false
	}
	return SectionMatch{Index: i, Delta: pos - s.offsets[i]}, true
}
