package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/middleware"
	"calendar-server/internal/schemas"
	"calendar-server/internal/services"
	"calendar-server/internal/utils"
)

type TodoHdl interface {
	ListTodos(c *gin.Context)
	CreateTodo(c *gin.Context)
	GetTodo(c *gin.Context)
	UpdateTodo(c *gin.Context)
	DeleteTodo(c *gin.Context)
}

type TodoHandler struct {
	TodoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) TodoHdl {
	return &TodoHandler{TodoService: todoService}
}

func (handler *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := handler.TodoService.ListTodos(c, middleware.CurrentAuth(c).UserID())
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, todos, http.StatusOK)
}

func (handler *TodoHandler) CreateTodo(c *gin.Context) {
	req := middleware.Payload[schemas.TodoCreateRequest](c)

	todo, err := handler.TodoService.CreateTodo(c, middleware.CurrentAuth(c).UserID(), req)
	if err != nil {
		writeTodoError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, todo, http.StatusCreated)
}

func (handler *TodoHandler) GetTodo(c *gin.Context) {
	todoID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}

	todo, err := handler.TodoService.GetTodo(c, middleware.CurrentAuth(c).UserID(), todoID)
	if err != nil {
		writeTodoError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, todo, http.StatusOK)
}

func (handler *TodoHandler) UpdateTodo(c *gin.Context) {
	todoID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}
	req := middleware.Payload[schemas.TodoUpdateRequest](c)

	todo, err := handler.TodoService.UpdateTodo(c, middleware.CurrentAuth(c).UserID(), todoID, req)
	if err != nil {
		writeTodoError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, todo, http.StatusOK)
}

func (handler *TodoHandler) DeleteTodo(c *gin.Context) {
	todoID, ok := utils.ParseIdParam(c)
	if !ok {
		return
	}

	if err := handler.TodoService.DeleteTodo(c, middleware.CurrentAuth(c).UserID(), todoID); err != nil {
		writeTodoError(c, err)
		return
	}

	utils.LogMessageWithFields(c, "info", "Todo deleted")
	c.Status(http.StatusNoContent)
}

func writeTodoError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTodoNotFound) {
		utils.WriteAndLogError(c, schemas.TodoNotFound, http.StatusNotFound, err)
		return
	}
	utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
}
