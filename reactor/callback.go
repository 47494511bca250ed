package reactor

import "sort"

// AddCallback registers cb to be invoked with id's new value whenever a
// future propagation round changes it. The returned handle is only
// meaningful together with id.
func (r *Reactor[T]) AddCallback(id CellID, cb Callback[T]) (CallbackID, error) {
	c, ok := r.cells[id]
	if !ok {
		return 0, ErrUnknownCell
	}
	if c.kind != computeCell {
		return 0, ErrNotAComputeCell
	}
	c.lastCallbackID++
	c.callbacks[c.lastCallbackID] = cb
	return c.lastCallbackID, nil
}

// RemoveCallback deregisters a callback. Removal takes effect immediately,
// including for an in-flight round that has recomputed but not yet reached
// the firing phase. Removing the same handle twice fails the second time
// with ErrUnknownCallback.
func (r *Reactor[T]) RemoveCallback(id CellID, cbID CallbackID) error {
	c, ok := r.cells[id]
	if !ok {
		return ErrUnknownCell
	}
	if c.kind != computeCell {
		return ErrNotAComputeCell
	}
	if _, ok := c.callbacks[cbID]; !ok {
		return ErrUnknownCallback
	}
	delete(c.callbacks, cbID)
	return nil
}

// fire invokes the cell's callbacks in registration order with its new
// stable value. The live registry is consulted per callback rather than a
// snapshot taken at round start, so removals made earlier in the same
// firing phase stay silent.
func (r *Reactor[T]) fire(c *cell[T]) {
	ids := make([]CallbackID, 0, len(c.callbacks))
	for cbID := range c.callbacks {
		ids = append(ids, cbID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, cbID := range ids {
		if cb, ok := c.callbacks[cbID]; ok {
			cb(c.value)
		}
	}
}
