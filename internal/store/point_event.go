package store

import (
	"context"
	"fmt"

	"github.com/campusconnect/studia/ent"
	"github.com/campusconnect/studia/ent/pointevent"
)

func (r *eventRepo) AppendPointAward(ctx context.Context, data PointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.PointEvent.Create().
		SetSequence(seqNum).
		SetCourseID(data.CourseID).
		SetLearnerID(data.LearnerID).
		SetPoints(data.Points).
		SetTotalAfter(data.TotalAfter).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save point event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPointAwards(ctx context.Context, opts QueryOpts) ([]PointEventRecord, error) {
	query := r.client.PointEvent.Query().
		Order(ent.Desc(pointevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pointevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pointevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pointevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(pointevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query point events: %w", err)
	}

	records := make([]PointEventRecord, len(events))
	for i, e := range events {
		records[i] = PointEventRecord{
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			CourseID:   e.CourseID,
			LearnerID:  e.LearnerID,
			Points:     e.Points,
			TotalAfter: e.TotalAfter,
			Reason:     e.Reason,
		}
	}
	return records, nil
}
