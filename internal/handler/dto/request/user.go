package request

import (
	"skill-swap-core/internal/domain/user"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type RegisterUserRequest struct {
	Name string `json:"name"`
}

func (r RegisterUserRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, user.MaxNameLength)),
	))
}
