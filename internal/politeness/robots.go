package politeness

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"

	"github.com/radix-engine/backend/internal/config"
)

// RobotsPolicy is the robots.txt the API publishes for crawlers hitting it
type RobotsPolicy struct {
	userAgent string
	body      string
	robots    *robotstxt.RobotsData
	logger    *logrus.Entry
}

// NewRobotsPolicy renders robots.txt from config and parses it back, so a
// rule the parser rejects fails at startup instead of being served.
func NewRobotsPolicy(cfg config.RobotsConfig, logger *logrus.Entry) (*RobotsPolicy, error) {
	if logger == nil {
		logger = logrus.WithField("component", "robots_policy")
	}

	agent := cfg.UserAgent
	if agent == "" {
		agent = "*"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User-agent: %s\n", agent)
	if len(cfg.Disallow) == 0 {
		b.WriteString("Disallow:\n")
	}
	for _, path := range cfg.Disallow {
		if !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("robots disallow path %q must start with /", path)
		}
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}

	body := b.String()
	robots, err := robotstxt.FromString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robots.txt: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"user_agent": agent,
		"disallow":   len(cfg.Disallow),
	}).Debug("Robots policy ready")

	return &RobotsPolicy{
		userAgent: agent,
		body:      body,
		robots:    robots,
		logger:    logger,
	}, nil
}

// Body is the robots.txt document served to clients
func (p *RobotsPolicy) Body() string {
	return p.body
}

// Allowed reports whether agent may fetch path under the published rules
func (p *RobotsPolicy) Allowed(agent, path string) bool {
	return p.robots.TestAgent(path, agent)
}

// Check is Allowed for a request that was already served. A client that
// ignored the published rules is logged at warn level. Requests without a
// User-Agent are not checked.
func (p *RobotsPolicy) Check(agent, path string) bool {
	if agent == "" || p.Allowed(agent, path) {
		return true
	}
	p.logger.WithFields(logrus.Fields{
		"user_agent": agent,
		"path":       path,
	}).Warn("Client requested a path disallowed by robots.txt")
	return false
}
