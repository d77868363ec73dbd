package prism

// Dimensions is the ordered set of offscreen targets a compositing camera
// can present, plus the index of the currently selected entry. Entries are
// weak references, the registry never releases a target.
//
// The entry list is fixed after setup. Selection state lives on the
// compositing camera that owns this registry, so multiple compositing
// cameras stay independent.
type Dimensions struct {
	entries  []TargetHandle
	selected int
}

func NewDimensions(entries ...TargetHandle) *Dimensions {
	return &Dimensions{entries: entries}
}

func (d *Dimensions) Len() int {
	return len(d.entries)
}

func (d *Dimensions) Selected() int {
	return d.selected
}

// RotateNext advances the selected entry by one, wrapping around. Calling
// this on an empty registry is a no-op, not an error.
func (d *Dimensions) RotateNext() {
	if len(d.entries) == 0 {
		return
	}

	d.selected = (d.selected + 1) % len(d.entries)
}

// Bindings returns exactly max target handles, reading the entries
// cyclically starting at the selected index. When the registry holds fewer
// than max entries the same targets repeat to fill the remaining slots, the
// shader contract always receives a fixed size array. Returns nil for an
// empty registry.
func (d *Dimensions) Bindings(max int) []TargetHandle {
	n := len(d.entries)
	if n == 0 || max <= 0 {
		return nil
	}

	bindings := make([]TargetHandle, max)
	for i := range bindings {
		bindings[i] = d.entries[(d.selected+i)%n]
	}

	return bindings
}
