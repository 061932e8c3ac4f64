package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finanzapp/internal/models"
	"finanzapp/internal/services"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for creating a user.
// Only the presence of each key is required.
type CreateUserRequest struct {
	Name     *string `json:"name" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// UserResponse represents a user in the response. The password is never included.
type UserResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

func newUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		RegistrationDate: u.RegisteredAt.UTC().Format(models.DateLayout),
	}
}

// ListUsers handles the retrieval of all users
// @Summary     List users
// @Description Get every registered user
// @Tags        users
// @Produce     json
// @Success     200 {array}  UserResponse  "List of users"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateUser handles the creation of a new user
// @Summary     Create a user
// @Description Register a new user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body     CreateUserRequest true "User details"
// @Success     201     {object} CreatedResponse   "User created"
// @Failure     400     {object} ErrorResponse     "Missing field"
// @Failure     409     {object} ErrorResponse     "Email already registered"
// @Failure     500     {object} ErrorResponse     "Server error"
// @Router      /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.CreateUser(*req.Name, *req.Email, *req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Message: "User created", ID: user.ID})
}
