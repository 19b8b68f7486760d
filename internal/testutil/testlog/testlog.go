package testlog

import (
	"testing"

	"github.com/railmod/cbusgw/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logger := logging.ConfigureTests()
	logger.Debug().Str("test", t.Name()).Msg("start")
}
