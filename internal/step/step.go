package step

import (
	"fmt"
	"slices"
)

// Kind identifies which builder produced a Step.
type Kind int

const (
	Generic Kind = iota
	Transform
	DistributedCopy
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Transform:
		return "transform"
	case DistributedCopy:
		return "distributed-copy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// TypeCustomJar is the only step type a playbook emits.
	TypeCustomJar = "CUSTOM_JAR"
	// TerminateJobFlow is the failure action of every step.
	TerminateJobFlow = "TERMINATE_JOB_FLOW"
)

// Step is a single command run by the cluster.
type Step struct {
	Kind            Kind     `json:"-"`
	Type            string   `json:"type"`
	Name            string   `json:"name"`
	ActionOnFailure string   `json:"actionOnFailure"`
	Jar             string   `json:"jar"`
	Arguments       []string `json:"arguments"`
}

// WithArgs returns a copy of s with args appended.
func (s Step) WithArgs(args ...string) Step {
	out := s
	out.Arguments = append(slices.Clone(s.Arguments), args...)
	return out
}

// NewGeneric builds a custom jar step.
func NewGeneric(name, jar string, args []string) Step {
	return newStep(Generic, name, jar, args)
}

func newStep(kind Kind, name, jar string, args []string) Step {
	if args == nil {
		args = []string{}
	}
	return Step{
		Kind:            kind,
		Type:            TypeCustomJar,
		Name:            name,
		ActionOnFailure: TerminateJobFlow,
		Jar:             jar,
		Arguments:       slices.Clone(args),
	}
}
