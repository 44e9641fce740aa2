package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging contract shared by all modelpickd components. It is
// satisfied by both *logrus.Logger and *logrus.Entry, allowing components to
// receive either a root logger or a field-scoped sub-logger.
type Logger = logrus.FieldLogger
