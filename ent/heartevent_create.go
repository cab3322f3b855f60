// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devika/pmquest/ent/heartevent"
)

// HeartEventCreate is the builder for creating a HeartEvent entity.
type HeartEventCreate struct {
	config
	mutation *HeartEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *HeartEventCreate) SetSequence(v int64) *HeartEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HeartEventCreate) SetTimestamp(v time.Time) *HeartEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableTimestamp(v *time.Time) *HeartEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *HeartEventCreate) SetSessionID(v string) *HeartEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableSessionID(v *string) *HeartEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetDelta sets the "delta" field.
func (_c *HeartEventCreate) SetDelta(v int) *HeartEventCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *HeartEventCreate) SetReason(v string) *HeartEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetBalance sets the "balance" field.
func (_c *HeartEventCreate) SetBalance(v int) *HeartEventCreate {
	_c.mutation.SetBalance(v)
	return _c
}

// Mutation returns the HeartEventMutation object of the builder.
func (_c *HeartEventCreate) Mutation() *HeartEventMutation {
	return _c.mutation
}

// Save creates the HeartEvent in the database.
func (_c *HeartEventCreate) Save(ctx context.Context) (*HeartEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeartEventCreate) SaveX(ctx context.Context) *HeartEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeartEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := heartevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeartEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HeartEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HeartEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "HeartEvent.delta"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "HeartEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := heartevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "HeartEvent.balance"`)}
	}
	return nil
}

func (_c *HeartEventCreate) sqlSave(ctx context.Context) (*HeartEvent, error) {
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

func (_c *HeartEventCreate) createSpec() (*HeartEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HeartEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(heartevent.Table, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(heartevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(heartevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(heartevent.FieldDelta, field.TypeInt, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(heartevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Balance(); ok {
		_spec.SetField(heartevent.FieldBalance, field.TypeInt, value)
		_node.Balance = value
	}
	return _node, _spec
}

// HeartEventCreateBulk is the builder for creating many HeartEvent entities in bulk.
type HeartEventCreateBulk struct {
	config
	err      error
	builders []*HeartEventCreate
}

// Save creates the HeartEvent entities in the database.
func (_c *HeartEventCreateBulk) Save(ctx context.Context) ([]*HeartEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HeartEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeartEventMutation)
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
func (_c *HeartEventCreateBulk) SaveX(ctx context.Context) []*HeartEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
