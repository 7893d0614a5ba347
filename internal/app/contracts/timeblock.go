package contracts

import (
	"context"
	"time"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/dto/responses"
)

type TimeBlockUsecase interface {
	ToggleTimeBlock(ctx context.Context, request *requests.ToggleTimeBlock) (*responses.TimeBlock, error)
	GetWeeklyTimeBlocks(ctx context.Context, request *requests.GetWeeklyTimeBlocks) ([]responses.TimeBlock, error)
}

// TimeBlockRepository is the durable keyed store for time blocks.
//
// SaveTimeBlock upserts by the (userID, date) identity key in one atomic
// storage operation so concurrent first saves for the same key never create
// two documents. FindByDate returns (nil, nil) when no document matches;
// absence is never an error here. FindRange covers the inclusive [start, end]
// interval in ascending date order.
type TimeBlockRepository interface {
	SaveTimeBlock(ctx context.Context, timeBlock *models.TimeBlock) (*models.TimeBlock, error)
	FindByDate(ctx context.Context, userID string, date time.Time) (*models.TimeBlock, error)
	FindRange(ctx context.Context, userID string, start, end time.Time) ([]models.TimeBlock, error)
}
