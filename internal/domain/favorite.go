package domain

// Favorites is an ordered set of destination ids, oldest first.
type Favorites []int

func (f Favorites) Contains(id int) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle appends id when absent and removes it otherwise. The returned bool
// reports whether id is a favorite afterwards.
func (f Favorites) Toggle(id int) (Favorites, bool) {
	if f.Contains(id) {
		return f.Remove(id), false
	}
	return append(f, id), true
}

func (f Favorites) Add(id int) Favorites {
	if f.Contains(id) {
		return f
	}
	return append(f, id)
}

func (f Favorites) Remove(id int) Favorites {
	out := make(Favorites, 0, len(f))
	for _, v := range f {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
