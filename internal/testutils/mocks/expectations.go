// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	mockclock "github.com/KirkDiggler/trait-forge/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/trait-forge/internal/pkg/idgen/mock"
	collectionrun "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run"
	collectionrunmock "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run/mock"
)

// ExpectRunStored sets up the ID, clock and repository calls of one successful
// generation. The returned input is filled in when Create is called.
func ExpectRunStored(
	ctx context.Context,
	mockIDGen *idgenmock.MockGenerator,
	mockClock *mockclock.MockClock,
	mockRepo *collectionrunmock.MockRepository,
	runID string,
	now time.Time,
) *collectionrun.CreateInput {
	mockIDGen.EXPECT().Generate().Return(runID)
	mockClock.EXPECT().Now().Return(now)

	stored := &collectionrun.CreateInput{}
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input collectionrun.CreateInput) (*collectionrun.CreateOutput, error) {
			*stored = input
			return &collectionrun.CreateOutput{Run: input.Run}, nil
		})
	return stored
}
