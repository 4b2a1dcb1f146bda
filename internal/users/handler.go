package users

import (
	"errors"
	"strings"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserResponse struct {
	ID        uint   `json:"id"`
	UserName  string `json:"userName"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type CreateUserRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func userResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var userList []models.User
		if err := database.DB.Find(&userList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		res := make([]UserResponse, 0, len(userList))
		for i := range userList {
			res = append(res, userResponse(&userList[i]))
		}
		return c.JSON(res)
	}
}

func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(userResponse(&user))
	}
}

func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.UserName = strings.TrimSpace(body.UserName)
		if body.UserName == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Username and password are required")
		}

		role := models.UserRole(body.Role)
		if role != models.RoleAdmin && role != models.RoleStaff {
			return fiber.NewError(fiber.StatusBadRequest, "Role must be admin or staff")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("user_name = ?", body.UserName).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			UserName:     body.UserName,
			PasswordHash: string(hash),
			FullName:     body.FullName,
			Role:         role,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Username already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		return c.Status(fiber.StatusCreated).JSON(userResponse(&user))
	}
}

func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.FullName != nil {
			user.FullName = *body.FullName
		}
		if body.Role != nil {
			role := models.UserRole(*body.Role)
			if role != models.RoleAdmin && role != models.RoleStaff {
				return fiber.NewError(fiber.StatusBadRequest, "Role must be admin or staff")
			}
			user.Role = role
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update user")
		}
		return c.JSON(userResponse(&user))
	}
}

func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		// The built-in admin login can never be removed, not even by an admin.
		if user.UserName == "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Cannot delete admin user")
		}

		if err := database.DB.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete user")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ResetPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		var body ResetPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.NewPassword == "" {
			return fiber.NewError(fiber.StatusBadRequest, "New password is required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user.PasswordHash = string(hash)
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not reset password")
		}
		return c.JSON(fiber.Map{"message": "Password reset successfully"})
	}
}
