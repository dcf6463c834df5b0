// Package cluster compiles the EMR cluster descriptor: instance groups,
// network placement, roles, tags, bootstrap actions and Hadoop
// configuration.
package cluster
