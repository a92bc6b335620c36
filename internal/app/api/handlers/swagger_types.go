package handlers

import (
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/jobs"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/newsletter"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/stats"
	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespUser wraps a single user record in the standard envelope.
type RespUser struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.User              `json:"data"`
}

// RespContentAccess wraps the coarse content gate result.
type RespContentAccess struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    contentAccessResp        `json:"data"`
}

type RespSeries struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.ContentSeries     `json:"data"`
}

type RespSeriesList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.ContentSeries   `json:"data"`
}

type RespPurchase struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Purchase          `json:"data"`
}

type RespPurchaseList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Purchase        `json:"data"`
}

type RespProgress struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.WatchProgress     `json:"data"`
}

type RespProgressList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.WatchProgress   `json:"data"`
}

type RespBroadcast struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    newsletter.BroadcastResult `json:"data"`
}

type RespLiveStream struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.LiveStream        `json:"data"`
}

type RespLiveStreamList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.LiveStream      `json:"data"`
}

type RespScanUsers struct {
	Code    response.APIResponseCode  `json:"code"`
	Message string                    `json:"message"`
	Data    account.ScanUsersResponse `json:"data"`
}

type RespTrialSweep struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    jobs.TrialSweepResult    `json:"data"`
}

type RespPayPalSync struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    jobs.PayPalSyncResult    `json:"data"`
}

type RespJobStatus struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    jobs.Status              `json:"data"`
}

type RespStatsOverview struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    stats.OverviewResponse   `json:"data"`
}
