//go:build unit

package commands_test

import (
	"context"

	"hotel-management-api/internal/usecase/shared"
	sharedmock "hotel-management-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// runWithin makes the mocked unit of work execute its callback against tx.
func runWithin(uow *sharedmock.MockUnitOfWork, tx shared.Tx) *gomock.Call {
	return uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		},
	)
}
