// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusconnect/studia/ent/pointevent"
)

// PointEventCreate is the builder for creating a PointEvent entity.
type PointEventCreate struct {
	config
	mutation *PointEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PointEventCreate) SetSequence(v int64) *PointEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PointEventCreate) SetTimestamp(v time.Time) *PointEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PointEventCreate) SetNillableTimestamp(v *time.Time) *PointEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *PointEventCreate) SetCourseID(v string) *PointEventCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PointEventCreate) SetLearnerID(v string) *PointEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *PointEventCreate) SetPoints(v int) *PointEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetTotalAfter sets the "total_after" field.
func (_c *PointEventCreate) SetTotalAfter(v int) *PointEventCreate {
	_c.mutation.SetTotalAfter(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PointEventCreate) SetReason(v string) *PointEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the PointEventMutation object of the builder.
func (_c *PointEventCreate) Mutation() *PointEventMutation {
	return _c.mutation
}

// Save creates the PointEvent in the database.
func (_c *PointEventCreate) Save(ctx context.Context) (*PointEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointEventCreate) SaveX(ctx context.Context) *PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pointevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PointEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PointEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "PointEvent.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := pointevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "PointEvent.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PointEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := pointevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PointEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "PointEvent.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := pointevent.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "PointEvent.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAfter(); !ok {
		return &ValidationError{Name: "total_after", err: errors.New(`ent: missing required field "PointEvent.total_after"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "PointEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := pointevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *PointEventCreate) sqlSave(ctx context.Context) (*PointEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PointEventCreate) createSpec() (*PointEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PointEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointevent.Table, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pointevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pointevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(pointevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(pointevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(pointevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.TotalAfter(); ok {
		_spec.SetField(pointevent.FieldTotalAfter, field.TypeInt, value)
		_node.TotalAfter = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// PointEventCreateBulk is the builder for creating many PointEvent entities in bulk.
type PointEventCreateBulk struct {
	config
	err      error
	builders []*PointEventCreate
}

// Save creates the PointEvent entities in the database.
func (_c *PointEventCreateBulk) Save(ctx context.Context) ([]*PointEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PointEventCreateBulk) SaveX(ctx context.Context) []*PointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
