// Package env keeps names of environment variables with special significance to
// tvk.
package env

// Environment variables with special significance to tvk.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                = "HOME"
	TVK_CONFIG          = "TVK_CONFIG"
	TVK_TEST_TIME_SCALE = "TVK_TEST_TIME_SCALE"
)
