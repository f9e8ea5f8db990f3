package diag

import (
	"testing"

	"src.tvk.sh/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &culpritStart, start)
	testutil.Set(t, &culpritEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}

type testErrorTag struct{}

func (testErrorTag) ErrorTag() string { return "test error" }

type testError = Error[testErrorTag]
