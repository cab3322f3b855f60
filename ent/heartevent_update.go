// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devika/pmquest/ent/heartevent"
	"github.com/devika/pmquest/ent/predicate"
)

// HeartEventUpdate is the builder for updating HeartEvent entities.
type HeartEventUpdate struct {
	config
	hooks    []Hook
	mutation *HeartEventMutation
}

// Where appends a list predicates to the HeartEventUpdate builder.
func (_u *HeartEventUpdate) Where(ps ...predicate.HeartEvent) *HeartEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HeartEventUpdate) SetSessionID(v string) *HeartEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableSessionID(v *string) *HeartEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *HeartEventUpdate) ClearSessionID() *HeartEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *HeartEventUpdate) SetDelta(v int) *HeartEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableDelta(v *int) *HeartEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *HeartEventUpdate) AddDelta(v int) *HeartEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *HeartEventUpdate) SetReason(v string) *HeartEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableReason(v *string) *HeartEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalance sets the "balance" field.
func (_u *HeartEventUpdate) SetBalance(v int) *HeartEventUpdate {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableBalance(v *int) *HeartEventUpdate {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *HeartEventUpdate) AddBalance(v int) *HeartEventUpdate {
	_u.mutation.AddBalance(v)
	return _u
}

// Mutation returns the HeartEventMutation object of the builder.
func (_u *HeartEventUpdate) Mutation() *HeartEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeartEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeartEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartEventUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := heartevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartevent.Table, heartevent.Columns, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(heartevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(heartevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(heartevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(heartevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(heartevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(heartevent.FieldBalance, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeartEventUpdateOne is the builder for updating a single HeartEvent entity.
type HeartEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeartEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *HeartEventUpdateOne) SetSessionID(v string) *HeartEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableSessionID(v *string) *HeartEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *HeartEventUpdateOne) ClearSessionID() *HeartEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *HeartEventUpdateOne) SetDelta(v int) *HeartEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableDelta(v *int) *HeartEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *HeartEventUpdateOne) AddDelta(v int) *HeartEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *HeartEventUpdateOne) SetReason(v string) *HeartEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableReason(v *string) *HeartEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalance sets the "balance" field.
func (_u *HeartEventUpdateOne) SetBalance(v int) *HeartEventUpdateOne {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableBalance(v *int) *HeartEventUpdateOne {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *HeartEventUpdateOne) AddBalance(v int) *HeartEventUpdateOne {
	_u.mutation.AddBalance(v)
	return _u
}

// Mutation returns the HeartEventMutation object of the builder.
func (_u *HeartEventUpdateOne) Mutation() *HeartEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HeartEventUpdate builder.
func (_u *HeartEventUpdateOne) Where(ps ...predicate.HeartEvent) *HeartEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeartEventUpdateOne) Select(field string, fields ...string) *HeartEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HeartEvent entity.
func (_u *HeartEventUpdateOne) Save(ctx context.Context) (*HeartEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartEventUpdateOne) SaveX(ctx context.Context) *HeartEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeartEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartEventUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := heartevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartEventUpdateOne) sqlSave(ctx context.Context) (_node *HeartEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartevent.Table, heartevent.Columns, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HeartEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, heartevent.FieldID)
		for _, f := range fields {
			if !heartevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != heartevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(heartevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(heartevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(heartevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(heartevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(heartevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(heartevent.FieldBalance, field.TypeInt, value)
	}
	_node = &HeartEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
