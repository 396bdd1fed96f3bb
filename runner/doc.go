// Package runner plays one pandemaniac game file: it loads the graph, runs
// each requested strategy through a seeding.Engine and writes one schedule
// file per strategy, logging each outcome with logrus. Strategies are
// independent; a failing one is reported in its Result and does not stop the
// others.
package runner
