package opengl

// Vertex is one corner of a colored quad.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	Color uint32     // RGBA packed color
}

// DrawCmd is a run of indices sharing one clip rectangle.
type DrawCmd struct {
	ElemCount   uint32     // Number of indices to draw
	ClipRect    [4]float32 // Clip rectangle (x1, y1, x2, y2)
	IndexOffset uint32     // Offset into index buffer
}

// RGBA creates a packed color (0xAABBGGRR).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// DrawList accumulates quads for one frame, split into commands whenever
// the clip rectangle changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint32

	clipStack   [][4]float32
	currentClip [4]float32
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	dl := &DrawList{
		VtxBuffer: make([]Vertex, 0, 1024),
		IdxBuffer: make([]uint32, 0, 1536),
	}
	dl.Clear()
	return dl
}

// Clear resets the list for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
}

// PushClipRect restricts subsequent quads to a rectangle, intersected
// with the current clip.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{max(x1, c[0]), max(y1, c[1]), min(x2, c[2]), min(y2, c[3])}
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	cmd := dl.command()
	base := uint32(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	cmd.ElemCount += 6
}

// AddRectOutline draws a rectangle outline inside the rectangle's bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// command returns the command new quads go into, starting a new one when
// the clip rectangle changed.
func (dl *DrawList) command() *DrawCmd {
	if n := len(dl.CmdBuffer); n > 0 && dl.CmdBuffer[n-1].ClipRect == dl.currentClip {
		return &dl.CmdBuffer[n-1]
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:    dl.currentClip,
		IndexOffset: uint32(len(dl.IdxBuffer)),
	})
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}
