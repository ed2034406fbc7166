package draw

type Kind string

const (
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
	KindCircle  Kind = "circle"
)

// Handle refers to a primitive created on a Surface. The zero Handle is never
// issued.
type Handle uint64

// PointerListener is notified of pointer activity on a Surface.
type PointerListener interface {
	Click(ev PointerEvent)
	Move(ev PointerEvent)
}

// Surface is the drawing collaborator handlers render their drafts on.
// Remove must tolerate handles that are unknown or already removed.
type Surface interface {
	Create(kind Kind, attrs Attributes) Handle
	Add(h Handle)
	Remove(h Handle)
	Update(h Handle, attrs Attributes)
	OnClick(h Handle, fn func())
	Listen(l PointerListener)
	Size() (width, height int)
}
