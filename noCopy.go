package maybe

// noCopy can be embedded to provide "go vet" linting
// when a type must not be copied after first use, like Pending
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
