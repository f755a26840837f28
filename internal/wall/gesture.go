package wall

// StreamID identifies one pointer stream: the mouse or a single touch.
type StreamID int

// MouseStream is the stream used for the mouse pointer.
const MouseStream StreamID = 0

// TouchStream returns the stream for the touch with the given id.
func TouchStream(id int) StreamID { return StreamID(id + 1) }

// gesture tracks one press. last suppresses repeated toggles of the same cell
// while the pointer keeps moving over it.
type gesture struct {
	last *Cell
}

// Press starts a gesture on stream and toggles the cell under (x, y), if any.
func (w *Wall) Press(stream StreamID, x, y float64) (Cell, bool) {
	g := &gesture{}
	w.streams[stream] = g
	return w.paint(g, x, y)
}

// Move continues the gesture on stream. A different cell under the pointer is
// toggled; leaving every cell clears the last target so re-entering the same
// cell toggles it again. Moves on a stream that is not pressed are ignored.
func (w *Wall) Move(stream StreamID, x, y float64) (Cell, bool) {
	g, ok := w.streams[stream]
	if !ok {
		return Cell{}, false
	}
	return w.paint(g, x, y)
}

// Release ends the gesture on stream.
func (w *Wall) Release(stream StreamID) {
	delete(w.streams, stream)
}

// ReleaseAll ends every active gesture, for example when the window loses
// focus.
func (w *Wall) ReleaseAll() {
	for id := range w.streams {
		delete(w.streams, id)
	}
}

// Pressing reports whether stream has an active gesture.
func (w *Wall) Pressing(stream StreamID) bool {
	_, ok := w.streams[stream]
	return ok
}

// Activate toggles c directly. It is used for discrete activations such as a
// keyboard press and never interacts with drag de-duplication.
func (w *Wall) Activate(c Cell) (State, bool) {
	return w.Toggle(c)
}

func (w *Wall) paint(g *gesture, x, y float64) (Cell, bool) {
	c, ok := w.HitTest(x, y)
	if !ok {
		g.last = nil
		return Cell{}, false
	}
	if g.last != nil && *g.last == c {
		return Cell{}, false
	}
	if _, ok := w.Toggle(c); !ok {
		g.last = nil
		return Cell{}, false
	}
	g.last = &c
	return c, true
}
