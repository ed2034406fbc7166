package draw

import "strconv"

type fakePrim struct {
	kind  Kind
	attrs Attributes
	added bool
	hook  func()
}

// fakeSurface records every surface call made by handlers.
type fakeSurface struct {
	next      Handle
	prims     map[Handle]*fakePrim
	removed   []Handle
	listeners []PointerListener
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{prims: make(map[Handle]*fakePrim)}
}

func (f *fakeSurface) Create(kind Kind, attrs Attributes) Handle {
	f.next++
	f.prims[f.next] = &fakePrim{kind: kind, attrs: attrs.Clone()}
	return f.next
}

func (f *fakeSurface) Add(h Handle) {
	if p, ok := f.prims[h]; ok {
		p.added = true
	}
}

func (f *fakeSurface) Remove(h Handle) {
	if _, ok := f.prims[h]; !ok {
		return
	}
	delete(f.prims, h)
	f.removed = append(f.removed, h)
}

func (f *fakeSurface) Update(h Handle, attrs Attributes) {
	if p, ok := f.prims[h]; ok {
		p.attrs = p.attrs.With(attrs)
	}
}

func (f *fakeSurface) OnClick(h Handle, fn func()) {
	if p, ok := f.prims[h]; ok {
		p.hook = fn
	}
}

func (f *fakeSurface) Listen(l PointerListener) { f.listeners = append(f.listeners, l) }

func (f *fakeSurface) Size() (int, int) { return 200, 100 }

func (f *fakeSurface) click(x, y float64) {
	for _, l := range f.listeners {
		l.Click(PointerEvent{OffsetX: x, OffsetY: y})
	}
}

func (f *fakeSurface) move(x, y float64) {
	for _, l := range f.listeners {
		l.Move(PointerEvent{OffsetX: x, OffsetY: y})
	}
}

func (f *fakeSurface) ofKind(kind Kind) []*fakePrim {
	var out []*fakePrim
	for h := Handle(1); h <= f.next; h++ {
		if p, ok := f.prims[h]; ok && p.kind == kind {
			out = append(out, p)
		}
	}
	return out
}

type recorder struct {
	shapes []Shape
}

func (r *recorder) ShapeFinalized(s Shape) { r.shapes = append(r.shapes, s) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "shape-" + strconv.Itoa(n)
	}
}

func newTestSession(sub float64) (*Session, *fakeSurface, *recorder) {
	surface := newFakeSurface()
	rec := &recorder{}
	s := NewSession(surface, sub, rec, WithIDGenerator(sequentialIDs()))
	return s, surface, rec
}
