package frame

import (
	"fmt"
	"sort"
	"strings"
)

// Component locates one colour component inside a frame.
type Component struct {
	Plane  int // index of the plane holding the component
	Step   int // bytes between horizontally adjacent samples
	Offset int // bytes before the first sample of a row
	Depth  int // significant bits per sample
}

// Bytes returns the storage width of one sample: 1 for depth <= 8, else 2.
func (c Component) Bytes() int {
	if c.Depth > 8 {
		return 2
	}
	return 1
}

// PixelFormat describes the memory layout of a raster format. Descriptors
// are shared and must not be modified.
//
// For YUV formats the components are Y, U, V and optionally A; for RGB
// formats they are R, G, B and optionally A, whatever their byte order.
type PixelFormat struct {
	Name        string
	Components  []Component
	Log2ChromaW uint // horizontal subsampling shift of planes 1 and 2
	Log2ChromaH uint // vertical subsampling shift of planes 1 and 2
	RGB         bool
	Alpha       bool
}

// String returns the format name.
func (f *PixelFormat) String() string {
	return f.Name
}

// PlaneCount returns the number of planes in the format.
func (f *PixelFormat) PlaneCount() int {
	n := 0
	for _, c := range f.Components {
		if c.Plane+1 > n {
			n = c.Plane + 1
		}
	}
	return n
}

// IsChroma reports whether plane is a subsampled chroma plane.
func (f *PixelFormat) IsChroma(plane int) bool {
	return !f.RGB && (plane == 1 || plane == 2)
}

// Subsampled reports whether any plane is smaller than the luma plane.
func (f *PixelFormat) Subsampled() bool {
	return f.Log2ChromaW > 0 || f.Log2ChromaH > 0
}

// PlaneSize returns the size in samples of plane for a frame of width x
// height. Chroma planes round up so odd sizes keep their last column/row.
func (f *PixelFormat) PlaneSize(plane, width, height int) (int, int) {
	if !f.IsChroma(plane) {
		return width, height
	}
	return CeilRShift(width, f.Log2ChromaW), CeilRShift(height, f.Log2ChromaH)
}

// ComponentSize returns the sample size of component c.
func (f *PixelFormat) ComponentSize(c, width, height int) (int, int) {
	return f.PlaneSize(f.Components[c].Plane, width, height)
}

// LineSize returns the minimum number of bytes in one row of plane.
func (f *PixelFormat) LineSize(plane, width int) int {
	pw, _ := f.PlaneSize(plane, width, 1)
	step := 0
	for _, c := range f.Components {
		if c.Plane == plane && c.Step > step {
			step = c.Step
		}
	}
	return pw * step
}

// CeilRShift divides v by 2^s rounding up.
func CeilRShift(v int, s uint) int {
	return -((-v) >> s)
}

func planar8(n int) []Component {
	cs := make([]Component, n)
	for i := range cs {
		cs[i] = Component{Plane: i, Step: 1, Depth: 8}
	}
	return cs
}

func planar16(n, depth int) []Component {
	cs := make([]Component, n)
	for i := range cs {
		cs[i] = Component{Plane: i, Step: 2, Depth: depth}
	}
	return cs
}

func packed(step int, offsets ...int) []Component {
	cs := make([]Component, len(offsets))
	for i, off := range offsets {
		cs[i] = Component{Plane: 0, Step: step, Offset: off, Depth: 8}
	}
	return cs
}

// Registered pixel formats.
var (
	Gray        = &PixelFormat{Name: "gray", Components: planar8(1)}
	Gray16LE    = &PixelFormat{Name: "gray16le", Components: planar16(1, 16)}
	YUV420P     = &PixelFormat{Name: "yuv420p", Components: planar8(3), Log2ChromaW: 1, Log2ChromaH: 1}
	YUV422P     = &PixelFormat{Name: "yuv422p", Components: planar8(3), Log2ChromaW: 1}
	YUV440P     = &PixelFormat{Name: "yuv440p", Components: planar8(3), Log2ChromaH: 1}
	YUV444P     = &PixelFormat{Name: "yuv444p", Components: planar8(3)}
	YUV410P     = &PixelFormat{Name: "yuv410p", Components: planar8(3), Log2ChromaW: 2, Log2ChromaH: 2}
	YUV411P     = &PixelFormat{Name: "yuv411p", Components: planar8(3), Log2ChromaW: 2}
	YUVA420P    = &PixelFormat{Name: "yuva420p", Components: planar8(4), Log2ChromaW: 1, Log2ChromaH: 1, Alpha: true}
	YUVA444P    = &PixelFormat{Name: "yuva444p", Components: planar8(4), Alpha: true}
	YUV420P10LE = &PixelFormat{Name: "yuv420p10le", Components: planar16(3, 10), Log2ChromaW: 1, Log2ChromaH: 1}
	YUV420P16LE = &PixelFormat{Name: "yuv420p16le", Components: planar16(3, 16), Log2ChromaW: 1, Log2ChromaH: 1}
	YUV444P16LE = &PixelFormat{Name: "yuv444p16le", Components: planar16(3, 16)}
	RGB24       = &PixelFormat{Name: "rgb24", Components: packed(3, 0, 1, 2), RGB: true}
	BGR24       = &PixelFormat{Name: "bgr24", Components: packed(3, 2, 1, 0), RGB: true}
	RGBA        = &PixelFormat{Name: "rgba", Components: packed(4, 0, 1, 2, 3), RGB: true, Alpha: true}
	BGRA        = &PixelFormat{Name: "bgra", Components: packed(4, 2, 1, 0, 3), RGB: true, Alpha: true}
	GBRP        = &PixelFormat{Name: "gbrp", RGB: true, Components: []Component{
		{Plane: 2, Step: 1, Depth: 8},
		{Plane: 0, Step: 1, Depth: 8},
		{Plane: 1, Step: 1, Depth: 8},
	}}
)

var formats = map[string]*PixelFormat{}

func init() {
	for _, f := range []*PixelFormat{
		Gray, Gray16LE,
		YUV420P, YUV422P, YUV440P, YUV444P, YUV410P, YUV411P,
		YUVA420P, YUVA444P,
		YUV420P10LE, YUV420P16LE, YUV444P16LE,
		RGB24, BGR24, RGBA, BGRA, GBRP,
	} {
		formats[f.Name] = f
	}
}

// LookupFormat returns the registered format with the given name.
func LookupFormat(name string) (*PixelFormat, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// FormatNames returns the names of all registered formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
