package depot

type factory struct{}

var Factory factory

// NewWorld validates s and builds an empty world logging through
// Config.Logger().
func (f factory) NewWorld(s Settings) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return newWorld(s, Config.Logger()), nil
}

func (f factory) NewDefaultWorld() *World {
	return newWorld(DefaultSettings(), Config.Logger())
}

func (f factory) NewFilter() Filter {
	return Filter{}
}
