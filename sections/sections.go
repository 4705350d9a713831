package sections

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/DavidAnderegg/pysurf/curves"
	"github.com/DavidAnderegg/pysurf/types"
)

var (
	ErrUnknownSection = errors.New("section is not defined")
	ErrNotSurface     = errors.New("section is not a surface section")
	ErrPointer        = errors.New("invalid section pointer array")
)

/*
Source holds the global element arrays of a surface file together with the section pointers that slice them.
Pointer arrays are 1-based and have one more entry than the matching name list: section i owns elements
Ptr[i]-1 through Ptr[i+1]-2 of the global connectivity.
*/
type Source struct {
	Coor                      *mat.Dense // [3, Npts]
	TriaConn                  [][3]int
	QuadsConn                 [][4]int
	BarsConn                  []curves.Edge
	SurfTriaPtr, SurfQuadsPtr []int
	CurveBarsPtr              []int
	SurfNames, CurveNames     []string
}

type SurfaceSection struct {
	Name      string
	TriaConn  [][3]int
	QuadsConn [][4]int
}

type CurveSection struct {
	Name     string
	BarsConn []curves.Edge    // Sorted bars when Sorted is true, the original slice otherwise
	Directed []types.EdgeInt // Sorted bars keeping their traversal direction, nil when not sorted
	Result   curves.Result
	Sorted   bool
}

// Points extracts the ordered coordinates of every polyline in the section, base 1 connectivity
func (cs *CurveSection) Points(coor *mat.Dense) (pts []*mat.Dense, err error) {
	pts = make([]*mat.Dense, len(cs.Result.Polylines))
	for i, p := range cs.Result.Polylines {
		if pts[i], err = p.Points(coor, 1); err != nil {
			return nil, fmt.Errorf("curve %q: %w", cs.Name, err)
		}
	}
	return
}

type Sections struct {
	Coor         *mat.Dense
	surfaces     map[string]*SurfaceSection
	curves       map[string]*CurveSection
	surfaceOrder []string
	curveOrder   []string
}

type options struct {
	logger *zap.Logger
	strict bool
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict additionally rejects curve sections that sort into more than one polyline
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// FormatName normalizes a section name read from a fixed width character field
func FormatName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

/*
Split slices the global connectivity of src into named surface and curve sections. Every curve section is
sorted into polylines; a curve that can not be sorted keeps its original bars and a warning naming the curve
is logged.
*/
func Split(src Source, opts ...Option) (s *Sections, err error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	s = &Sections{
		Coor:     src.Coor,
		surfaces: make(map[string]*SurfaceSection, len(src.SurfNames)),
		curves:   make(map[string]*CurveSection, len(src.CurveNames)),
	}
	var (
		triaRanges, quadsRanges, barsRanges [][2]int
	)
	if triaRanges, err = ranges("surface tria", src.SurfTriaPtr, len(src.SurfNames), len(src.TriaConn)); err != nil {
		return nil, err
	}
	if quadsRanges, err = ranges("surface quads", src.SurfQuadsPtr, len(src.SurfNames), len(src.QuadsConn)); err != nil {
		return nil, err
	}
	if barsRanges, err = ranges("curve bars", src.CurveBarsPtr, len(src.CurveNames), len(src.BarsConn)); err != nil {
		return nil, err
	}
	for i, raw := range src.SurfNames {
		name := FormatName(raw)
		tr, qr := triaRanges[i], quadsRanges[i]
		s.surfaces[name] = &SurfaceSection{
			Name:      name,
			TriaConn:  src.TriaConn[tr[0]:tr[1]],
			QuadsConn: src.QuadsConn[qr[0]:qr[1]],
		}
		s.surfaceOrder = append(s.surfaceOrder, name)
	}
	for i, raw := range src.CurveNames {
		name := FormatName(raw)
		br := barsRanges[i]
		s.curves[name] = sortCurve(name, src.BarsConn[br[0]:br[1]], o)
		s.curveOrder = append(s.curveOrder, name)
	}
	return
}

func sortCurve(name string, bars []curves.Edge, o *options) (cs *CurveSection) {
	cs = &CurveSection{Name: name, BarsConn: bars}
	r, err := curves.Sort(bars)
	if err == nil {
		err = r.Err()
	}
	if err == nil && o.strict {
		// One curve per section, walked from its free end
		var p curves.Polyline
		if p, err = curves.SortSingle(bars); err == nil {
			r.Polylines = []curves.Polyline{p}
		}
	}
	cs.Result = r
	if err == nil {
		for _, p := range r.Polylines {
			cs.Directed = append(cs.Directed, p.Directed()...)
		}
		err = conserved(bars, cs.Directed)
	}
	if err != nil {
		cs.Directed = nil
		o.logger.Warn("curve could not be sorted, it might be composed of disconnected or branching curves",
			zap.String("curve", name),
			zap.Int("bars", len(bars)),
			zap.Int("components", len(curves.Components(bars))),
			zap.Error(err))
		return
	}
	cs.BarsConn = curves.FromDirected(cs.Directed)
	cs.Sorted = true
	o.logger.Debug("curve sorted",
		zap.String("curve", name),
		zap.Int("bars", len(bars)),
		zap.Int("polylines", len(r.Polylines)))
	return
}

// conserved checks that the directed bars carry exactly the input bars, each once
func conserved(bars []curves.Edge, directed []types.EdgeInt) (err error) {
	count := make(map[types.EdgeKey]int, len(bars))
	for _, bar := range bars {
		count[bar.Key()]++
	}
	for _, de := range directed {
		count[de.GetKey()]--
	}
	for key, n := range count {
		if n != 0 {
			return fmt.Errorf("%w: bar %v is off by %d in the sorted curve",
				curves.ErrDegraded, key.GetVertices(false), -n)
		}
	}
	return
}

func ranges(label string, ptr []int, nSections, nElements int) (rs [][2]int, err error) {
	if nSections == 0 && len(ptr) == 0 {
		return
	}
	if len(ptr) != nSections+1 {
		err = fmt.Errorf("%w: %s pointer has %d entries for %d sections", ErrPointer, label, len(ptr), nSections)
		return
	}
	rs = make([][2]int, nSections)
	for i := range rs {
		// Shift indices from 1-based pointers
		start, end := ptr[i]-1, ptr[i+1]-1
		if start < 0 || end < start || end > nElements {
			err = fmt.Errorf("%w: %s section %d spans [%d,%d) of %d elements",
				ErrPointer, label, i, start, end, nElements)
			return nil, err
		}
		rs[i] = [2]int{start, end}
	}
	return
}

func (s *Sections) Surface(name string) (ss *SurfaceSection, ok bool) {
	ss, ok = s.surfaces[FormatName(name)]
	return
}

func (s *Sections) Curve(name string) (cs *CurveSection, ok bool) {
	cs, ok = s.curves[FormatName(name)]
	return
}

func (s *Sections) SurfaceNames() []string { return append([]string(nil), s.surfaceOrder...) }

func (s *Sections) CurveNames() []string { return append([]string(nil), s.curveOrder...) }

// MergeSurfaces concatenates the connectivity of the selected surface sections in the order given
func (s *Sections) MergeSurfaces(names []string) (triaConn [][3]int, quadsConn [][4]int, err error) {
	for _, raw := range names {
		name := FormatName(raw)
		ss, ok := s.surfaces[name]
		if !ok {
			if _, isCurve := s.curves[name]; isCurve {
				return nil, nil, fmt.Errorf("%w: %q", ErrNotSurface, name)
			}
			return nil, nil, fmt.Errorf("%w: %q, check the surface names in the input file", ErrUnknownSection, name)
		}
		triaConn = append(triaConn, ss.TriaConn...)
		quadsConn = append(quadsConn, ss.QuadsConn...)
	}
	return
}
