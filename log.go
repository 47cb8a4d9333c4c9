package primegen

import (
	"github.com/sirupsen/logrus"
)

// Logger is the package-level logger used by the GenerateRandomPrime
// façade to log, at debug level, the requested length and then either the
// final prime_gen_counter or the error. The Miller-Rabin façade functions
// and the subpackages do not log. It defaults to logrus's standard logger; callers may reassign it to
// redirect or silence output.
var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}
