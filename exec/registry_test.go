package exec

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRegistry(t *testing.T) {
	t.Run("register and get task", func(t *testing.T) {
		registry := NewTaskRegistry()

		err := registry.Register(Task{Name: "test", Command: "go test ./...", Description: "Run tests"})
		require.NoError(t, err)

		retrieved, ok := registry.Get("test")
		assert.True(t, ok)
		assert.Equal(t, "go test ./...", retrieved.Command)
		assert.Equal(t, "Run tests", retrieved.Description)
	})

	t.Run("register duplicate task", func(t *testing.T) {
		registry := NewTaskRegistry()

		require.NoError(t, registry.Register(Task{Name: "duplicate", Command: "ls"}))

		err := registry.Register(Task{Name: "duplicate", Command: "pwd"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("register task with empty name", func(t *testing.T) {
		registry := NewTaskRegistry()
		err := registry.Register(Task{Command: "ls"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty name")
	})

	t.Run("register task with empty command", func(t *testing.T) {
		registry := NewTaskRegistry()
		err := registry.Register(Task{Name: "blank", Command: "  "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCommand)
	})

	t.Run("list tasks", func(t *testing.T) {
		registry := NewTaskRegistry()

		for _, name := range []string{"task-c", "task-a", "task-b"} {
			require.NoError(t, registry.Register(Task{Name: name, Command: "ls"}))
		}

		assert.Equal(t, []string{"task-a", "task-b", "task-c"}, registry.List())
	})

	t.Run("list with descriptions", func(t *testing.T) {
		registry := NewTaskRegistry()

		registry.Register(Task{Name: "t1", Command: "ls", Description: "First task"})
		registry.Register(Task{Name: "t2", Command: "ls", Description: "Second task"})

		descriptions := registry.ListWithDescriptions()
		assert.Equal(t, "First task", descriptions["t1"])
		assert.Equal(t, "Second task", descriptions["t2"])
	})

	t.Run("has and size", func(t *testing.T) {
		registry := NewTaskRegistry()

		assert.False(t, registry.Has("temp"))
		assert.Equal(t, 0, registry.Size())
		registry.Register(Task{Name: "temp", Command: "ls"})
		assert.True(t, registry.Has("temp"))
		assert.Equal(t, 1, registry.Size())
	})

	t.Run("execute task", func(t *testing.T) {
		var out bytes.Buffer
		executor := newTestExecutor(&out, true)
		registry := NewTaskRegistry()
		dir := t.TempDir()
		registry.Register(Task{Name: "where", Command: "pwd", Dir: dir})

		session := &recordingSession{}
		res, err := registry.Execute(context.Background(), "where", executor, session)
		require.NoError(t, err)
		assert.True(t, res.Success())
		assert.Equal(t, []string{"status", "done", "activate", "deactivate"}, session.Calls())
	})

	t.Run("execute non-existent task", func(t *testing.T) {
		registry := NewTaskRegistry()

		_, err := registry.Execute(context.Background(), "non-existent", NewExecutor(nil), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("execute all stops at first failure", func(t *testing.T) {
		var out bytes.Buffer
		executor := newTestExecutor(&out, true)
		registry := NewTaskRegistry()
		registry.Register(Task{Name: "first", Command: "echo one"})
		registry.Register(Task{Name: "broken", Command: "exit 2"})
		registry.Register(Task{Name: "never", Command: "echo never"})

		results, err := registry.ExecuteAll(context.Background(), []string{"first", "broken", "never"}, executor, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExit)
		assert.Contains(t, err.Error(), "task 'broken'")
		require.Len(t, results, 2)
		assert.True(t, results[0].Success())
		assert.Equal(t, 2, results[1].ExitCode)
		assert.NotContains(t, out.String(), "never")
	})

	t.Run("execute all rejects unknown names up front", func(t *testing.T) {
		var out bytes.Buffer
		executor := newTestExecutor(&out, true)
		registry := NewTaskRegistry()
		registry.Register(Task{Name: "first", Command: "echo one"})

		_, err := registry.ExecuteAll(context.Background(), []string{"first", "missing"}, executor, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task 'missing' not found")
		assert.Empty(t, out.String())
	})
}
