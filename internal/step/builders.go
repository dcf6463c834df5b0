package step

import "fmt"

// S3DistCp jar locations for legacy (AMI 1.x-3.x) and current clusters.
const (
	LegacyS3DistCpJar = "/home/hadoop/lib/emr-s3distcp-1.0.jar"
	S3DistCpJar       = "/usr/share/aws/emr/s3-dist-cp/lib/s3-dist-cp.jar"
)

// hdfsFlag makes Scalding jobs run against the cluster filesystem.
const hdfsFlag = "--hdfs"

// NewDistributedCopy builds an S3DistCp step copying src to dest.
func NewDistributedCopy(legacy bool, name, src, dest, endpoint string, extra []string) Step {
	jar := S3DistCpJar
	if legacy {
		jar = LegacyS3DistCpJar
	}
	args := append([]string{
		"--src", src,
		"--dest", dest,
		"--s3Endpoint", endpoint,
	}, extra...)
	return newStep(DistributedCopy, name, jar, args)
}

// Folders are the locations a transform job reads from and writes to. Unset
// folders are not passed to the job at all.
type Folders struct {
	Input  *string
	Good   *string
	Bad    *string
	Errors *string
}

// NewTransform builds a Scalding job step. The folder flags follow the main
// class and --hdfs in a fixed order, and extra arguments come last.
func NewTransform(name, jar, mainClass string, f Folders, extra []string) Step {
	args := []string{mainClass, hdfsFlag}
	args = append(args, Pairs{
		OptionalFlag("--input_folder", f.Input),
		OptionalFlag("--output_folder", f.Good),
		OptionalFlag("--bad_rows_folder", f.Bad),
		OptionalFlag("--exceptions_folder", f.Errors),
	}.Flatten()...)
	args = append(args, extra...)
	return newStep(Transform, name, jar, args)
}

// NewDebug builds the step enabling EMR debugging for a region.
func NewDebug(region string) Step {
	return NewGeneric("Setup Hadoop debugging",
		fmt.Sprintf("s3://%s.elasticmapreduce/libs/script-runner/script-runner.jar", region),
		[]string{fmt.Sprintf("s3://%s.elasticmapreduce/libs/state-pusher/0.1/fetch", region)},
	)
}

// NewHBase builds the step starting the HBase master.
func NewHBase(version string) Step {
	return NewGeneric("Start HBase "+version,
		fmt.Sprintf("/home/hadoop/lib/hbase-%s.jar", version),
		[]string{"emr.hbase.backup.Main", "--start-master"},
	)
}
