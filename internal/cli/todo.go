package cli

import (
	"fmt"
	"strings"
)

type TodoCmd struct {
	Add    TodoAddCmd    `cmd:"" help:"Add a todo."`
	List   TodoListCmd   `cmd:"" help:"List todos."`
	Edit   TodoEditCmd   `cmd:"" help:"Edit a todo's text."`
	Toggle TodoToggleCmd `cmd:"" help:"Toggle a todo's completed state."`
	Delete TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	Move   TodoMoveCmd   `cmd:"" help:"Move a todo to a new position."`
}

// findTodoByPosition resolves a todo by its 1-based list position.
func findTodoByPosition(ctx *Context, position int) (string, error) {
	todos := ctx.Store.Todos()
	if position < 1 || position > len(todos) {
		return "", fmt.Errorf("no todo at position %d", position)
	}
	return todos[position-1].ID, nil
}

type TodoAddCmd struct {
	Text []string `arg:"" help:"Todo text."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	text := strings.Join(c.Text, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("todo text must not be empty")
	}
	if err := ctx.Store.AddTodo(text, ""); err != nil {
		return err
	}
	fmt.Printf("Added todo: %s\n", strings.TrimSpace(text))
	return nil
}

type TodoListCmd struct {
	All bool `help:"Include completed todos."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	todos := ctx.Store.Todos()
	if len(todos) == 0 {
		fmt.Println("No todos.")
		return nil
	}

	for i, todo := range todos {
		if todo.Completed && !c.All {
			continue
		}
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Printf("%3d. [%s] %s\n", i+1, mark, todo.Text)
	}
	return nil
}

type TodoEditCmd struct {
	Position int      `arg:"" help:"Todo position (see 'todo list --all')."`
	Text     []string `arg:"" help:"New text."`
}

func (c *TodoEditCmd) Run(ctx *Context) error {
	id, err := findTodoByPosition(ctx, c.Position)
	if err != nil {
		return err
	}
	return ctx.Store.UpdateTodo(id, strings.Join(c.Text, " "))
}

type TodoToggleCmd struct {
	Position int `arg:"" help:"Todo position (see 'todo list --all')."`
}

func (c *TodoToggleCmd) Run(ctx *Context) error {
	id, err := findTodoByPosition(ctx, c.Position)
	if err != nil {
		return err
	}
	return ctx.Store.ToggleTodo(id)
}

type TodoDeleteCmd struct {
	Position int `arg:"" help:"Todo position (see 'todo list --all')."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	id, err := findTodoByPosition(ctx, c.Position)
	if err != nil {
		return err
	}
	return ctx.Store.DeleteTodo(id)
}

type TodoMoveCmd struct {
	From int `arg:"" help:"Current position."`
	To   int `arg:"" help:"New position."`
}

func (c *TodoMoveCmd) Run(ctx *Context) error {
	return ctx.Store.ReorderTodos(c.From-1, c.To-1)
}
