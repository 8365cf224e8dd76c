//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_request_post_test
package assignment_request_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestAssignment(ctx context.Context, order entities.Order) (*entities.AssignmentOffer, error)
}
