package todo

type createTodoArgs struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// updateTodoArgs carries a partial update: only the non-nil optional fields are
// applied. A present description replaces the stored one; clearing a description
// back to absent is not expressible with this shape.
type updateTodoArgs struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// todoIDArgs is shared by the tools that address a single item by its ID.
type todoIDArgs struct {
	ID string `json:"id"`
}

var listTodosSchema = []byte(`{
  "type": "object",
  "properties": {},
  "required": []
}`)

var createTodoSchema = []byte(`{
  "type": "object",
  "properties": {
    "title": { "type": "string", "description": "The title of the todo item" },
    "description": { "type": "string", "description": "An optional description of the todo item" }
  },
  "required": ["title"]
}`)

var updateTodoSchema = []byte(`{
  "type": "object",
  "properties": {
    "id": { "type": "string", "description": "Todo item ID" },
    "title": { "type": "string", "description": "The new title of the todo item" },
    "description": { "type": "string", "description": "The new description of the todo item" },
    "completed": { "type": "boolean", "description": "The new completion state of the todo item" }
  },
  "required": ["id"]
}`)

var deleteTodoSchema = []byte(`{
  "type": "object",
  "properties": {
    "id": { "type": "string", "description": "Todo item ID" }
  },
  "required": ["id"]
}`)

var getTodoSchema = []byte(`{
  "type": "object",
  "properties": {
    "id": { "type": "string", "description": "Todo item ID" }
  },
  "required": ["id"]
}`)

var completeTodoSchema = []byte(`{
  "type": "object",
  "properties": {
    "id": { "type": "string", "description": "Todo item ID" }
  },
  "required": ["id"]
}`)
