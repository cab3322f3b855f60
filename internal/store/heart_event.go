package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHeartEvent(ctx context.Context, data HeartEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.HeartEvent.Create().
		SetSequence(seqNum).
		SetDelta(data.Delta).
		SetReason(data.Reason).
		SetBalance(data.Balance)

	if data.SessionID != nil {
		builder = builder.SetSessionID(*data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save heart event: %w", err)
	}
	return nil
}
