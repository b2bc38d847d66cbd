package transcript

import "github.com/sirupsen/logrus"

var log = logrus.WithField("process", "transcript")

type config struct {
	perm   Permutation
	logger logrus.FieldLogger
}

// Option configures a Transcript at construction.
type Option func(*config)

// WithPermutation replaces the Keccak-f[1600] permutation. Only transcripts
// built on the same permutation produce compatible challenges.
func WithPermutation(p Permutation) Option {
	return func(c *config) {
		c.perm = p
	}
}

// WithLogger traces every commit and challenge at debug level. Labels and
// lengths are logged, message bytes and challenge output never are.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithTrace traces to the package logger.
func WithTrace() Option {
	return WithLogger(log)
}
