package depot

import "go.uber.org/zap"

// Config holds package-wide defaults picked up by worlds at creation.
var Config config = config{logger: zap.NewNop()}

type config struct {
	logger *zap.Logger
}

// SetLogger sets the logger new worlds derive theirs from. A nil logger
// disables logging.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

func (c *config) Logger() *zap.Logger {
	return c.logger
}
