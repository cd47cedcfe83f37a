package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
)

var validate = validator.New()

// parseBody decodifica el body JSON y valida los tags `validate` del request.
// Devuelve un error ya respondido (400) cuando el body no pasa.
func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "el cuerpo de la petición no es JSON válido",
		})
	}
	if err := validate.Struct(dest); err != nil {
		msg := "datos inválidos"
		if errs, ok := err.(validator.ValidationErrors); ok {
			detalles := make([]string, 0, len(errs))
			for _, fe := range errs {
				detalles = append(detalles, fieldError(fe))
			}
			msg = strings.Join(detalles, "; ")
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: msg,
		})
	}
	return nil
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo " + fe.Field() + " es obligatorio"
	case "email":
		return "el campo " + fe.Field() + " debe ser un email válido"
	case "min":
		return "el campo " + fe.Field() + " debe tener al menos " + fe.Param()
	case "max":
		return "el campo " + fe.Field() + " supera el máximo de " + fe.Param()
	case "gte":
		return "el campo " + fe.Field() + " debe ser mayor o igual a " + fe.Param()
	case "oneof":
		return "el campo " + fe.Field() + " debe ser uno de: " + fe.Param()
	default:
		return "el campo " + fe.Field() + " es inválido"
	}
}
