package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/talentiq/talentiq-backend-go/internal/domain/mobility"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/middleware"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
)

// bodyDecodeTimeout bounds how long a mobility request may spend streaming
// its body; slow clients get a 400 before any database work starts.
const bodyDecodeTimeout = 5 * time.Second

type MobilityHandler interface {
	UpdateMobility(w http.ResponseWriter, r *http.Request)
}

type MobilityHandlerImpl struct {
	mobilityService mobility.MobilityService
}

func NewMobilityHandler(mobilityService mobility.MobilityService) MobilityHandler {
	return &MobilityHandlerImpl{mobilityService: mobilityService}
}

// UpdateMobility implements MobilityHandler. The acting HR scope is the
// authenticated user's own id.
func (m *MobilityHandlerImpl) UpdateMobility(w http.ResponseWriter, r *http.Request) {
	hrID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	// 1. Decode JSON under the body budget
	var mobilityReq mobility.UpdateMobilityRequest
	if err := decodeBody(r, bodyDecodeTimeout, &mobilityReq); err != nil {
		slog.Error("UpdateMobility decode error", "error", err,
			"request_id", chiMiddleware.GetReqID(r.Context()))
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := mobilityReq.Validate(); err != nil {
		slog.Error("UpdateMobility validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	start := time.Now()
	resp, err := m.mobilityService.UpdateMobility(r.Context(), hrID, mobilityReq)
	if err != nil {
		if errors.Is(err, mobility.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			slog.Error("UpdateMobility timed out", "error", err,
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"elapsed", time.Since(start).String(),
				"user_id", mobilityReq.UserID,
				"transfer", mobilityReq.Transfer)
		} else {
			slog.Error("UpdateMobility service error", "error", err,
				"user_id", mobilityReq.UserID,
				"transfer", mobilityReq.Transfer)
		}
		response.HandleError(w, r, err)
		return
	}

	// Success response
	slog.Info("Mobility updated successfully", "user_id", mobilityReq.UserID,
		"transfer", mobilityReq.Transfer)
	response.JSON(w, r, http.StatusOK, resp)
}

// decodeBody decodes the request body while racing the timeout. On expiry the
// handler stops waiting; the decoder goroutine drains on its own when the
// request is closed.
func decodeBody(r *http.Request, timeout time.Duration, dst any) error {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- json.NewDecoder(r.Body).Decode(dst)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
