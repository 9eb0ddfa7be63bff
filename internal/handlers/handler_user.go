package handlers

import (
	"net/http"

	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/core/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/abuyamnglobal-com/tajheez/internal/middleware"
	"github.com/abuyamnglobal-com/tajheez/internal/repositories/database/pgsql"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// userHandler serves user reads.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(userService portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: userService,
	}
}

// getUser godoc
// @Summary Get a user
// @Description Retrieves an active user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse "User details"
// @Failure 400 {object} map[string]string "Invalid user id"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// registerUserRoutes registers user routes.
func registerUserRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	userRepo := pgsql.NewPgxUserRepository(dbPool)
	userService := services.NewUserService(userRepo)

	userHandler := newUserHandler(userService)

	users := group.Group("/users")
	{
		users.GET("/:id", userHandler.getUser)
	}
}
