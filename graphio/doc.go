// Package graphio moves graphs and seed schedules between files and
// *core.Graph / seeding.Schedule.
//
// Graph files are JSON objects mapping a node ID to the array of its
// neighbors. Nodes are created in the order their keys appear in the
// document, then edges in the order they are listed, so the rankers'
// tie-break is fixed by the file itself. Schedules are written one node ID per
// line, every line terminated by '\n'.
package graphio
