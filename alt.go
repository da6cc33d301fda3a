package maybe

// Alt keeps m if it is a Just and falls back to other otherwise.
// Passing anything but a Maybe yields Nothing.
func (m Maybe) Alt(other any) Maybe {
	o, ok := asMaybe(other)
	if !ok {
		return Nothing()
	}

	if !m.just && o.just {
		return Just(o.value)
	}

	return m
}
