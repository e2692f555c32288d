package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/dto"
)

// AuthHandler maneja registro, login y administración de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, role (admin|staff)"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "usuario creado", user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "sesión iniciada", resp)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", users)
}

// UpdateUser godoc
// @Summary      Actualizar usuario (contraseña y/o rol)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "password, role (admin|staff); vacíos no cambian"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	user, err := h.uc.UpdateUser(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "usuario actualizado", user)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         auth
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "usuario eliminado", nil)
}
