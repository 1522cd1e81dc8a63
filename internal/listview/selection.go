package listview

import "slices"

// selection is an ordered id set; ids keep the order they were selected in.
type selection struct {
	ids []int64
}

func (s *selection) has(id int64) bool {
	return slices.Contains(s.ids, id)
}

func (s *selection) toggle(id int64) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

func (s *selection) set(ids []int64) {
	s.ids = slices.Clone(ids)
}

func (s *selection) remove(ids []int64) {
	s.ids = slices.DeleteFunc(s.ids, func(id int64) bool {
		return slices.Contains(ids, id)
	})
}

// retain drops ids for which keep is false.
func (s *selection) retain(keep func(int64) bool) {
	s.ids = slices.DeleteFunc(s.ids, func(id int64) bool { return !keep(id) })
}

func (s *selection) list() []int64 {
	return slices.Clone(s.ids)
}

func (s *selection) len() int {
	return len(s.ids)
}

// allOf reports whether every id in ids is selected. It is false for an
// empty ids.
func (s *selection) allOf(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.has(id) {
			return false
		}
	}
	return true
}
