// Package storage computes every storage location a playbook or cluster
// descriptor refers to: run-partitioned bucket paths, HDFS staging folders,
// hosted asset jars and regional S3 endpoints.
package storage
