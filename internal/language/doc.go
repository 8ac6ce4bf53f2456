// Package language provides language tag helpers shared by the flow plugins:
// parsing user supplied tag lists and naming tags for log output.
package language
