package gesture

// visitSet is a set of bubble indices backed by an epoch-stamped slice.
// A slot is a member only while its stamp equals the current epoch, so
// clear is O(1).
type visitSet struct {
	stamp []uint32
	epoch uint32
}

func (v *visitSet) has(i int) bool {
	return i >= 0 && i < len(v.stamp) && v.epoch != 0 && v.stamp[i] == v.epoch
}

func (v *visitSet) add(i int) {
	if i < 0 {
		return
	}
	if v.epoch == 0 {
		v.epoch = 1
	}
	if i >= len(v.stamp) {
		grown := make([]uint32, i+1, max(2*len(v.stamp), i+1))
		copy(grown, v.stamp)
		v.stamp = grown
	}
	v.stamp[i] = v.epoch
}

func (v *visitSet) clear() {
	v.epoch++
	if v.epoch == 0 {
		// wrapped; stale stamps could alias the new epoch
		clear(v.stamp)
		v.epoch = 1
	}
}

func (v *visitSet) len() int {
	n := 0
	for _, s := range v.stamp {
		if v.epoch != 0 && s == v.epoch {
			n++
		}
	}
	return n
}
