package politeness_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/politeness"
)

func init() {
	logrus.SetLevel(logrus.WarnLevel)
}

func TestRobotsPolicyDefaultRules(t *testing.T) {
	policy, err := politeness.NewRobotsPolicy(config.RobotsConfig{
		UserAgent: "*",
		Disallow:  []string{"/api/v1/"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "User-agent: *\nDisallow: /api/v1/\n", policy.Body())
	assert.True(t, policy.Allowed("SomeBot", "/api/lookup?q=bene"))
	assert.True(t, policy.Allowed("SomeBot", "/api/word?q=beneficial"))
	assert.False(t, policy.Allowed("SomeBot", "/api/v1/status"))
}

func TestRobotsPolicyAllowsEverythingWithoutRules(t *testing.T) {
	policy, err := politeness.NewRobotsPolicy(config.RobotsConfig{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "User-agent: *\nDisallow:\n", policy.Body())
	assert.True(t, policy.Allowed("SomeBot", "/api/v1/status"))
}

func TestRobotsPolicyScopedAgent(t *testing.T) {
	policy, err := politeness.NewRobotsPolicy(config.RobotsConfig{
		UserAgent: "BadBot",
		Disallow:  []string{"/"},
	}, nil)
	require.NoError(t, err)

	assert.False(t, policy.Allowed("BadBot", "/api/lookup"))
	assert.True(t, policy.Allowed("GoodBot", "/api/lookup"))
}

func TestRobotsPolicyRejectsRelativePath(t *testing.T) {
	_, err := politeness.NewRobotsPolicy(config.RobotsConfig{Disallow: []string{"api"}}, nil)
	assert.Error(t, err)
}

func TestRobotsPolicyCheckLogsDisallowedRequest(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	policy, err := politeness.NewRobotsPolicy(config.RobotsConfig{
		UserAgent: "*",
		Disallow:  []string{"/api/v1/"},
	}, logger.WithField("component", "robots"))
	require.NoError(t, err)

	assert.True(t, policy.Check("SomeBot", "/api/lookup"))
	assert.True(t, policy.Check("", "/api/v1/status"))
	assert.Empty(t, hook.AllEntries())

	assert.False(t, policy.Check("SomeBot", "/api/v1/status"))
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "SomeBot", entry.Data["user_agent"])
	assert.Equal(t, "/api/v1/status", entry.Data["path"])
}
