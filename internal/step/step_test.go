package step

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewGeneric(t *testing.T) {
	s := NewGeneric("name", "s3://jar", nil)

	assert.Equal(t, Generic, s.Kind)
	assert.Equal(t, TypeCustomJar, s.Type)
	assert.Equal(t, TerminateJobFlow, s.ActionOnFailure)
	require.NotNil(t, s.Arguments, "arguments must serialise as an empty array")
	assert.Empty(t, s.Arguments)
}

func TestWithArgs_DoesNotAlias(t *testing.T) {
	// --- Arrange ---
	base := NewGeneric("name", "jar", make([]string, 1, 8))

	// --- Act ---
	a := base.WithArgs("--a")
	b := base.WithArgs("--b")

	// --- Assert ---
	assert.Equal(t, []string{"", "--a"}, a.Arguments)
	assert.Equal(t, []string{"", "--b"}, b.Arguments)
	assert.Len(t, base.Arguments, 1, "original step must be unchanged")
}

func TestPairs_Flatten(t *testing.T) {
	ps := Pairs{
		Flag("--a", "1"),
		OptionalFlag("--b", nil),
		OptionalFlag("--c", ptr("3")),
		Flag("--d", ""),
	}

	assert.Equal(t, []string{"--a", "1", "--c", "3", "--d", ""}, ps.Flatten())
	assert.False(t, ps[1].Present())
}

func TestNewDistributedCopy(t *testing.T) {
	testCases := []struct {
		name    string
		legacy  bool
		wantJar string
	}{
		{name: "legacy", legacy: true, wantJar: LegacyS3DistCpJar},
		{name: "current", legacy: false, wantJar: S3DistCpJar},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDistributedCopy(tc.legacy, "copy", "s3://src/", "hdfs:///dest/", "s3.amazonaws.com", []string{"--srcPattern", ".*"})

			assert.Equal(t, DistributedCopy, s.Kind)
			assert.Equal(t, tc.wantJar, s.Jar)
			want := []string{
				"--src", "s3://src/",
				"--dest", "hdfs:///dest/",
				"--s3Endpoint", "s3.amazonaws.com",
				"--srcPattern", ".*",
			}
			if diff := cmp.Diff(want, s.Arguments); diff != "" {
				t.Errorf("arguments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewTransform(t *testing.T) {
	testCases := []struct {
		name    string
		folders Folders
		want    []string
	}{
		{
			name:    "all folders",
			folders: Folders{Input: ptr("in"), Good: ptr("good"), Bad: ptr("bad"), Errors: ptr("errors")},
			want: []string{
				"Main", "--hdfs",
				"--input_folder", "in",
				"--output_folder", "good",
				"--bad_rows_folder", "bad",
				"--exceptions_folder", "errors",
				"--extra", "x",
			},
		},
		{
			name:    "absent errors folder is omitted",
			folders: Folders{Input: ptr("in"), Good: ptr("good"), Bad: ptr("bad")},
			want: []string{
				"Main", "--hdfs",
				"--input_folder", "in",
				"--output_folder", "good",
				"--bad_rows_folder", "bad",
				"--extra", "x",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewTransform("job", "s3://jar", "Main", tc.folders, []string{"--extra", "x"})

			assert.Equal(t, Transform, s.Kind)
			assert.NotContains(t, s.Arguments, "")
			if diff := cmp.Diff(tc.want, s.Arguments); diff != "" {
				t.Errorf("arguments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreludeSteps(t *testing.T) {
	debug := NewDebug("eu-west-1")
	assert.Equal(t, "Setup Hadoop debugging", debug.Name)
	assert.Equal(t, "s3://eu-west-1.elasticmapreduce/libs/script-runner/script-runner.jar", debug.Jar)
	assert.Equal(t, []string{"s3://eu-west-1.elasticmapreduce/libs/state-pusher/0.1/fetch"}, debug.Arguments)

	hbase := NewHBase("0.92.0")
	assert.Equal(t, "Start HBase 0.92.0", hbase.Name)
	assert.Equal(t, "/home/hadoop/lib/hbase-0.92.0.jar", hbase.Jar)
	assert.Equal(t, []string{"emr.hbase.backup.Main", "--start-master"}, hbase.Arguments)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "transform", Transform.String())
	assert.Equal(t, "distributed-copy", DistributedCopy.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
