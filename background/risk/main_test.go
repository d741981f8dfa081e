package risk

import (
	"os"
	"testing"
)

var testWorker *RiskUpdateWorker

func TestMain(m *testing.M) {
	testWorker = NewRiskUpdateWorker("test", nil)
	testWorker.Register()
	os.Exit(m.Run())
}
