package todo

import "github.com/MegaGrindStone/mcp-todo"

var toolList = mcp.ListToolsResult{
	Tools: []mcp.Tool{
		{
			Name: "list_todos",
			Description: `
List all todo items.
      `,
			InputSchema: listTodosSchema,
		},
		{
			Name: "create_todo",
			Description: `
Create a new todo item.
      `,
			InputSchema: createTodoSchema,
		},
		{
			Name: "update_todo",
			Description: `
Update a todo item.
      `,
			InputSchema: updateTodoSchema,
		},
		{
			Name: "delete_todo",
			Description: `
Delete a todo item.
      `,
			InputSchema: deleteTodoSchema,
		},
		{
			Name: "get_todo",
			Description: `
Get details of a single todo item.
      `,
			InputSchema: getTodoSchema,
		},
		{
			Name: "complete_todo",
			Description: `
Mark a todo item as completed.
      `,
			InputSchema: completeTodoSchema,
		},
	},
}
