package app

// System is a unit of per-frame work. Systems run on the loop thread, one
// after another, in registration order. A non-nil error aborts the loop.
type System func(*Frame) error

// schedule holds the registered systems. Startup systems run once before
// the first frame; update systems run every frame.
type schedule struct {
	startup []System
	update  []System
}

func (s *schedule) addStartup(systems ...System) {
	s.startup = append(s.startup, systems...)
}

func (s *schedule) addUpdate(systems ...System) {
	s.update = append(s.update, systems...)
}

func (s *schedule) runStartup(f *Frame) error {
	for _, sys := range s.startup {
		if err := sys(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *schedule) runUpdate(f *Frame) error {
	for _, sys := range s.update {
		if err := sys(f); err != nil {
			return err
		}
	}
	return nil
}
