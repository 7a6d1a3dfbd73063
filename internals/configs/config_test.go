package configs

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HRMS_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("HRMS_TEST_KEY", "fallback"))
	assert.Equal(t, "", GetEnv("HRMS_TEST_KEY"))

	t.Setenv("HRMS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("HRMS_TEST_KEY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HRMS_TEST_INT", " 42 ")
	assert.Equal(t, 42, GetEnvInt("HRMS_TEST_INT", 7))

	t.Setenv("HRMS_TEST_INT", "lots")
	assert.Equal(t, 7, GetEnvInt("HRMS_TEST_INT", 7))

	t.Setenv("HRMS_TEST_INT", "")
	assert.Equal(t, 7, GetEnvInt("HRMS_TEST_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"250ms": 250 * time.Millisecond,
		"10":    10 * time.Second,
		"soon":  5 * time.Second,
		"":      5 * time.Second,
	}
	for in, want := range cases {
		t.Setenv("HRMS_TEST_DUR", in)
		assert.Equal(t, want, GetEnvDuration("HRMS_TEST_DUR", 5*time.Second), in)
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"http://a", "http://b"}, splitList("http://a, ,http://b,"))
}

func TestSetLogLevel(t *testing.T) {
	prev := Log.GetLevel()
	t.Cleanup(func() { Log.SetLevel(prev) })

	SetLogLevel("debug")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	SetLogLevel("not-a-level")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}
