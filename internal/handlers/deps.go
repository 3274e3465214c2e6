package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/bonuses-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	BonusSvc        bonusService
}
