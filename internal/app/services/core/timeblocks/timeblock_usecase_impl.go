package timeblocks

import (
	"context"
	"sync"
	"timegrid-service/internal/app/contracts"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/constvars"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/dto/responses"
	"timegrid-service/internal/pkg/exceptions"
	"timegrid-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type timeBlockUsecase struct {
	TimeBlockRepository contracts.TimeBlockRepository
	SessionService      contracts.SessionService
	Log                 *zap.Logger
}

var (
	timeBlockUsecaseInstance contracts.TimeBlockUsecase
	onceTimeBlockUsecase     sync.Once
)

func NewTimeBlockUsecase(
	timeBlockRepository contracts.TimeBlockRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.TimeBlockUsecase {
	onceTimeBlockUsecase.Do(func() {
		instance := &timeBlockUsecase{
			TimeBlockRepository: timeBlockRepository,
			SessionService:      sessionService,
			Log:                 logger,
		}
		timeBlockUsecaseInstance = instance
	})
	return timeBlockUsecaseInstance
}

// ToggleTimeBlock flips one hour bit for the session user's day, creating
// the day record on first touch. The read and the write are two separate
// store calls; only record creation is serialized (by the storage upsert),
// so concurrent toggles of different hours on the same day may overwrite
// each other's full-array write.
func (uc *timeBlockUsecase) ToggleTimeBlock(ctx context.Context, request *requests.ToggleTimeBlock) (*responses.TimeBlock, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeBlockUsecase.ToggleTimeBlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hourIndex := *request.HourIndex
	if hourIndex < 0 || hourIndex >= models.HoursPerDay {
		return nil, exceptions.ErrTimeBlockHourIndex(nil)
	}

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, err
	}

	timeBlock, err := uc.TimeBlockRepository.FindByDate(ctx, session.UserID, day)
	if err != nil {
		return nil, err
	}

	if timeBlock == nil {
		timeBlock = models.NewEmptyTimeBlock(session.UserID, day)
	}
	timeBlock = timeBlock.WithHourToggled(hourIndex)

	saved, err := uc.TimeBlockRepository.SaveTimeBlock(ctx, timeBlock)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("timeBlockUsecase.ToggleTimeBlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String("date", request.Date),
		zap.Int("hour_index", hourIndex),
	)
	return mapTimeBlockToResponse(saved), nil
}

// GetWeeklyTimeBlocks is a thin pass-through to the repository range query;
// callers re-bucket the result by day.
func (uc *timeBlockUsecase) GetWeeklyTimeBlocks(ctx context.Context, request *requests.GetWeeklyTimeBlocks) ([]responses.TimeBlock, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeBlockUsecase.GetWeeklyTimeBlocks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseDay(request.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDay(request.EndDate)
	if err != nil {
		return nil, err
	}

	timeBlocks, err := uc.TimeBlockRepository.FindRange(ctx, session.UserID, start, end)
	if err != nil {
		return nil, err
	}

	response := make([]responses.TimeBlock, 0, len(timeBlocks))
	for i := range timeBlocks {
		response = append(response, *mapTimeBlockToResponse(&timeBlocks[i]))
	}
	return response, nil
}

func mapTimeBlockToResponse(timeBlock *models.TimeBlock) *responses.TimeBlock {
	return &responses.TimeBlock{
		ID:    timeBlock.ID,
		Date:  timeBlock.Date.Format(constvars.DateLayout),
		Hours: timeBlock.Hours,
	}
}
