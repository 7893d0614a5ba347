package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"
	"timegrid-service/internal/app/contracts"
	"timegrid-service/internal/pkg/constvars"
	"timegrid-service/internal/pkg/dto/requests"
	"timegrid-service/internal/pkg/exceptions"
	"timegrid-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TimeBlockController struct {
	Log              *zap.Logger
	TimeBlockUsecase contracts.TimeBlockUsecase
}

var (
	timeBlockControllerInstance *TimeBlockController
	onceTimeBlockController     sync.Once
)

func NewTimeBlockController(logger *zap.Logger, timeBlockUsecase contracts.TimeBlockUsecase) *TimeBlockController {
	onceTimeBlockController.Do(func() {
		instance := &TimeBlockController{
			Log:              logger,
			TimeBlockUsecase: timeBlockUsecase,
		}
		timeBlockControllerInstance = instance
	})
	return timeBlockControllerInstance
}

func (ctrl *TimeBlockController) ToggleTimeBlock(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeBlockController.ToggleTimeBlock requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeBlockController.ToggleTimeBlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ToggleTimeBlock)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("TimeBlockController.ToggleTimeBlock error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	request.SessionData = sessionData

	// HourIndex is a pointer so a legitimate 0 still counts as provided;
	// the required tag rejects only a missing field.
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TimeBlockController.ToggleTimeBlock validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeBlockUsecase.ToggleTimeBlock(ctx, request)
	if err != nil {
		ctrl.Log.Error("TimeBlockController.ToggleTimeBlock error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeBlockController.ToggleTimeBlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleTimeBlockSuccessMessage, response)
}

func (ctrl *TimeBlockController) GetWeeklyTimeBlocks(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeBlockController.GetWeeklyTimeBlocks requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeBlockController.GetWeeklyTimeBlocks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	startDate := r.URL.Query().Get(constvars.URLQueryParamStartDate)
	endDate := r.URL.Query().Get(constvars.URLQueryParamEndDate)
	if startDate == "" || endDate == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDateRangeRequired(nil))
		return
	}

	request := &requests.GetWeeklyTimeBlocks{
		StartDate:   startDate,
		EndDate:     endDate,
		SessionData: sessionData,
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TimeBlockController.GetWeeklyTimeBlocks validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeBlockUsecase.GetWeeklyTimeBlocks(ctx, request)
	if err != nil {
		ctrl.Log.Error("TimeBlockController.GetWeeklyTimeBlocks error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeBlockController.GetWeeklyTimeBlocks succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WeeklyTimeBlocksSuccessMessage, response)
}
