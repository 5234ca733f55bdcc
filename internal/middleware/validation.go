package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
)

// ValidationInterceptor rejects requests whose message fails its validate
// struct tags with CodeInvalidArgument before they reach the handler.
func ValidationInterceptor() connect.UnaryInterceptorFunc {
	validate := validator.New()

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			err := validate.Struct(req.Any())

			var invalid *validator.InvalidValidationError
			var fields validator.ValidationErrors
			switch {
			case err == nil, errors.As(err, &invalid):
				// Not a struct message; nothing to check.
			case errors.As(err, &fields):
				return nil, connect.NewError(connect.CodeInvalidArgument, describe(fields))
			default:
				return nil, connect.NewError(connect.CodeInvalidArgument, err)
			}

			return next(ctx, req)
		}
	}
}

// describe renders field errors as "invalid Amount: must satisfy gt=0; ...".
func describe(fields validator.ValidationErrors) error {
	parts := make([]string, len(fields))
	for i, fe := range fields {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts[i] = fmt.Sprintf("invalid %s: must satisfy %s", fe.Namespace(), rule)
	}
	return errors.New(strings.Join(parts, "; "))
}
