package joint

// Selection is the bone selection shared by every joint of a rig. It holds
// the UUID of the selected bone, or "" when nothing is selected.
type Selection struct {
	uuid string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Selected returns the selected UUID, or "".
func (s *Selection) Selected() string { return s.uuid }

// Any reports whether something is selected.
func (s *Selection) Any() bool { return s.uuid != "" }

// Is reports whether uuid is the selected object.
func (s *Selection) Is(uuid string) bool { return uuid != "" && s.uuid == uuid }

// Select makes uuid the selection.
func (s *Selection) Select(uuid string) { s.uuid = uuid }

// Clear empties the selection.
func (s *Selection) Clear() { s.uuid = "" }
