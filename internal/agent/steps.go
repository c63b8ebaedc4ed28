package agent

import (
	"encoding/json"

	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
)

func emitStep(stream *events.Stream, typ domain.StepType, stage, msg string, payload any) {
	ev := domain.StepEvent{Type: typ, Stage: stage, Message: msg}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			ev.Payload = b
		}
	}
	stream.Step(ev)
}

func stageStart(s *events.Stream, stage, msg string) {
	emitStep(s, domain.StepStageStart, stage, msg, nil)
}

func stageProgress(s *events.Stream, stage, msg string, payload any) {
	emitStep(s, domain.StepStageProgress, stage, msg, payload)
}

func stageComplete(s *events.Stream, stage, msg string, payload any) {
	emitStep(s, domain.StepStageComplete, stage, msg, payload)
}

func stepError(s *events.Stream, stage, msg string) {
	emitStep(s, domain.StepError, stage, msg, nil)
}
