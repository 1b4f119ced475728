// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package reports accumulates the test report files found while the
// build runs. The sonar step later feeds the collected paths to the
// scanner so it reuses the existing reports instead of rerunning tests.
package reports

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Collector is a set of report file paths. Paths are deduplicated and
// always listed in lexical order so the argument built from them is
// stable across runs.
type Collector struct {
	paths map[string]struct{}
}

// NewCollector returns an empty report collector
func NewCollector() *Collector {
	return &Collector{paths: map[string]struct{}{}}
}

// Add records a report path. Adding a path twice is a no-op.
func (c *Collector) Add(path string) {
	if _, ok := c.paths[path]; ok {
		logrus.Debugf("Report %s already collected", path)
		return
	}
	c.paths[path] = struct{}{}
}

// Len returns the number of collected reports
func (c *Collector) Len() int {
	return len(c.paths)
}

// CollectedReports returns the report paths in lexical order
func (c *Collector) CollectedReports() []string {
	list := make([]string, 0, len(c.paths))
	for p := range c.paths {
		list = append(list, p)
	}
	sort.Strings(list)
	return list
}

// Join returns the collected paths as a single comma separated value
func (c *Collector) Join() string {
	return strings.Join(c.CollectedReports(), ",")
}
