package task

import "fmt"

// Collection is the ordered list of known tasks, in creation order.
//
// Methods never modify the receiver; every change returns a new slice so
// earlier snapshots held elsewhere stay valid.
type Collection []Task

// Len returns the number of tasks.
func (c Collection) Len() int {
	return len(c)
}

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Append returns a new collection with t added at the end.
func (c Collection) Append(t Task) Collection {
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, t)
}

// Find returns the task with the given id.
func (c Collection) Find(id string) (Task, bool) {
	for _, t := range c {
		if t.id == id {
			return t, true
		}
	}
	return Task{}, false
}

// Complete returns a collection where the task with the given id is
// completed. An unknown id leaves the contents unchanged.
func (c Collection) Complete(id string) Collection {
	out := c.Clone()
	for i := range out {
		if out[i].id == id {
			out[i] = out[i].Complete()
			break
		}
	}
	return out
}

// Delete returns a collection without the task with the given id.
// An unknown id leaves the contents unchanged.
func (c Collection) Delete(id string) Collection {
	out := make(Collection, 0, len(c))
	for _, t := range c {
		if t.id != id {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks that every id is unique.
func (c Collection) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for _, t := range c {
		if _, dup := seen[t.id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, t.id)
		}
		seen[t.id] = struct{}{}
	}
	return nil
}

// Equal reports whether both collections hold equal tasks in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
