package input

// Rect is a viewport-relative bounding rectangle.
type Rect struct {
	Left, Top, Width, Height float64
}

// Host is the surface controls attach to. Element and Document both satisfy it.
type Host interface {
	EventTarget

	// ClientWidth returns the drawable width in CSS pixels.
	ClientWidth() float64

	// ClientHeight returns the drawable height in CSS pixels.
	ClientHeight() float64

	// BoundingClientRect returns the viewport rectangle covered by the host.
	BoundingClientRect() Rect

	// OwnerDocument returns the document global move/up listeners go on.
	OwnerDocument() *Document

	// TouchAction returns the current touch-action style.
	TouchAction() string

	// SetTouchAction sets the touch-action style.
	SetTouchAction(v string)
}

// Element is a rectangular event target owned by a Document, typically the
// renderer's canvas.
type Element struct {
	*Dispatcher

	doc         *Document
	rect        Rect
	touchAction string
}

var _ Host = &Element{}

// NewElement creates an element of the given size at the viewport origin.
//
// Parameters:
//   - doc: the owning document (a new one is created when nil)
//   - width: client width
//   - height: client height
//
// Returns:
//   - *Element: the new element
func NewElement(doc *Document, width, height float64) *Element {
	if doc == nil {
		doc = NewDocument(width, height)
	}
	return &Element{
		Dispatcher: NewDispatcher(),
		doc:        doc,
		rect:       Rect{Width: width, Height: height},
	}
}

func (e *Element) ClientWidth() float64     { return e.rect.Width }
func (e *Element) ClientHeight() float64    { return e.rect.Height }
func (e *Element) BoundingClientRect() Rect { return e.rect }
func (e *Element) OwnerDocument() *Document { return e.doc }
func (e *Element) TouchAction() string      { return e.touchAction }
func (e *Element) SetTouchAction(v string)  { e.touchAction = v }

// SetBoundingClientRect moves and resizes the element.
func (e *Element) SetBoundingClientRect(r Rect) { e.rect = r }

// SetSize resizes the element, keeping its origin.
func (e *Element) SetSize(width, height float64) {
	e.rect.Width = width
	e.rect.Height = height
}

// Document is the top-level event target. Pointer move and up listeners are
// installed here during drags so they keep firing outside the element.
type Document struct {
	*Dispatcher

	width, height float64
	touchAction   string
}

var _ Host = &Document{}

// NewDocument creates a document with the given viewport size.
func NewDocument(width, height float64) *Document {
	return &Document{Dispatcher: NewDispatcher(), width: width, height: height}
}

// SetSize resizes the document viewport.
func (d *Document) SetSize(width, height float64) {
	d.width = width
	d.height = height
}

func (d *Document) ClientWidth() float64     { return d.width }
func (d *Document) ClientHeight() float64    { return d.height }
func (d *Document) BoundingClientRect() Rect { return Rect{Width: d.width, Height: d.height} }

// OwnerDocument returns d itself.
func (d *Document) OwnerDocument() *Document { return d }
func (d *Document) TouchAction() string      { return d.touchAction }
func (d *Document) SetTouchAction(v string)  { d.touchAction = v }

// IsDocument reports whether h is a Document rather than an element.
func IsDocument(h Host) bool {
	_, ok := h.(*Document)
	return ok
}
