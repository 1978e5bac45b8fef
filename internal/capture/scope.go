package capture

// releaseScope tracks platform resources allocated while constructing a
// capture input. release undoes everything still tracked, in reverse order,
// on every exit path; adopt transfers ownership of the tracked resources to
// the constructed input so release becomes a no-op.
type releaseScope struct {
	cleanups []func()
	adopted  bool
}

func newReleaseScope() *releaseScope {
	return &releaseScope{}
}

func (s *releaseScope) track(cleanup func()) {
	s.cleanups = append(s.cleanups, cleanup)
}

func (s *releaseScope) adopt() {
	s.adopted = true
}

func (s *releaseScope) release() {
	if s.adopted {
		return
	}
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil
}
