package converter

import (
	"lockin_backend/internal/api/dto/study"
	"lockin_backend/internal/model"
)

func ToRecordSession(req study.RecordSessionRequest) model.RecordSession {
	return model.RecordSession{
		DurationMinutes: req.DurationMinutes,
	}
}
