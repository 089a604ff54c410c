package exec

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/simonhull/firebird-suite/wren/progress"
)

// Task is a named command line, usually declared in wren.yml.
type Task struct {
	Name        string
	Command     string
	Dir         string
	Description string
}

// Run executes the task as a checked run.
func (t Task) Run(ctx context.Context, e *Executor, session progress.Session) (*Result, error) {
	cmd := NewGenericCommand(e, t.Command).WithProgress(session).Checked()
	if t.Dir != "" {
		cmd = cmd.WithDir(t.Dir)
	}
	return cmd.Run(ctx)
}

// TaskRegistry manages registered tasks
type TaskRegistry struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewTaskRegistry creates a new task registry instance
func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{
		tasks: make(map[string]Task),
	}
}

// Register adds a task to the registry
func (r *TaskRegistry) Register(task Task) error {
	if task.Name == "" {
		return fmt.Errorf("cannot register task with empty name")
	}
	if _, err := Parse(task.Command, task.Dir); err != nil {
		return fmt.Errorf("task '%s': %w", task.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.Name]; exists {
		return fmt.Errorf("task '%s' is already registered", task.Name)
	}

	r.tasks[task.Name] = task
	return nil
}

// Get retrieves a task by name
func (r *TaskRegistry) Get(name string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	return task, ok
}

// List returns all registered task names in sorted order
func (r *TaskRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ListWithDescriptions returns all registered tasks with their descriptions
func (r *TaskRegistry) ListWithDescriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string, len(r.tasks))
	for name, task := range r.tasks {
		result[name] = task.Description
	}
	return result
}

// Size returns the number of registered tasks
func (r *TaskRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks)
}

// Has checks if a task is registered
func (r *TaskRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.tasks[name]
	return exists
}

// Execute runs a task by name if it exists
func (r *TaskRegistry) Execute(ctx context.Context, name string, e *Executor, session progress.Session) (*Result, error) {
	task, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("task '%s' not found in registry", name)
	}
	return task.Run(ctx, e, session)
}

// ExecuteAll runs tasks in order and stops at the first failure. Unknown
// names are rejected before anything runs.
func (r *TaskRegistry) ExecuteAll(ctx context.Context, names []string, e *Executor, session progress.Session) ([]*Result, error) {
	for _, name := range names {
		if !r.Has(name) {
			return nil, fmt.Errorf("task '%s' not found in registry", name)
		}
	}

	results := make([]*Result, 0, len(names))
	for _, name := range names {
		res, err := r.Execute(ctx, name, e, session)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			return results, fmt.Errorf("task '%s': %w", name, err)
		}
	}
	return results, nil
}
