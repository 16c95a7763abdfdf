package buildgraph

// CompileTask is the mutable view of a single compile task in the host build
// graph: its compiler argument list, its boot classpath and its fork flag.
// One instance exists per compile task discovered in the project.
type CompileTask struct {
	name          string
	args          []string
	bootClasspath string
	fork          bool
}

// NewCompileTask creates a new compile task with the given name
func NewCompileTask(name string) *CompileTask {
	return &CompileTask{
		name: name,
	}
}

// Name returns the task's name within the project
func (t *CompileTask) Name() string {
	return t.name
}

// Args returns the task's compiler arguments in order
func (t *CompileTask) Args() []string {
	return t.args
}

// AppendArgs appends compiler arguments to the end of the argument list
func (t *CompileTask) AppendArgs(args ...string) {
	t.args = append(t.args, args...)
}

// BootClasspath returns the task's boot classpath, or "" if none is set
func (t *CompileTask) BootClasspath() string {
	return t.bootClasspath
}

// SetBootClasspath replaces the task's boot classpath
func (t *CompileTask) SetBootClasspath(bootClasspath string) {
	t.bootClasspath = bootClasspath
}

// Forked reports whether the task runs the compiler out of process
func (t *CompileTask) Forked() bool {
	return t.fork
}

// SetFork controls whether the task runs the compiler out of process
func (t *CompileTask) SetFork(fork bool) {
	t.fork = fork
}
