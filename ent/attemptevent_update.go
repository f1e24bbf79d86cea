// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Surfer12/microarch-lab-conversions/ent/attemptevent"
	"github.com/Surfer12/microarch-lab-conversions/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdate) SetKind(v string) *AttemptEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSourceBase sets the "source_base" field.
func (_u *AttemptEventUpdate) SetSourceBase(v int) *AttemptEventUpdate {
	_u.mutation.ResetSourceBase()
	_u.mutation.SetSourceBase(v)
	return _u
}

// SetNillableSourceBase sets the "source_base" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSourceBase(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetSourceBase(*v)
	}
	return _u
}

// AddSourceBase adds value to the "source_base" field.
func (_u *AttemptEventUpdate) AddSourceBase(v int) *AttemptEventUpdate {
	_u.mutation.AddSourceBase(v)
	return _u
}

// SetTargetBase sets the "target_base" field.
func (_u *AttemptEventUpdate) SetTargetBase(v int) *AttemptEventUpdate {
	_u.mutation.ResetTargetBase()
	_u.mutation.SetTargetBase(v)
	return _u
}

// SetNillableTargetBase sets the "target_base" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTargetBase(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTargetBase(*v)
	}
	return _u
}

// AddTargetBase adds value to the "target_base" field.
func (_u *AttemptEventUpdate) AddTargetBase(v int) *AttemptEventUpdate {
	_u.mutation.AddTargetBase(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *AttemptEventUpdate) SetValue(v string) *AttemptEventUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableValue(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v string) *AttemptEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *AttemptEventUpdate) SetComplexity(v float64) *AttemptEventUpdate {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableComplexity(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *AttemptEventUpdate) AddComplexity(v float64) *AttemptEventUpdate {
	_u.mutation.AddComplexity(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdate) SetUserAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSolvingTime sets the "solving_time" field.
func (_u *AttemptEventUpdate) SetSolvingTime(v float64) *AttemptEventUpdate {
	_u.mutation.ResetSolvingTime()
	_u.mutation.SetSolvingTime(v)
	return _u
}

// SetNillableSolvingTime sets the "solving_time" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSolvingTime(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetSolvingTime(*v)
	}
	return _u
}

// AddSolvingTime adds value to the "solving_time" field.
func (_u *AttemptEventUpdate) AddSolvingTime(v float64) *AttemptEventUpdate {
	_u.mutation.AddSolvingTime(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AttemptEventUpdate) SetErrorRate(v float64) *AttemptEventUpdate {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableErrorRate(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AttemptEventUpdate) AddErrorRate(v float64) *AttemptEventUpdate {
	_u.mutation.AddErrorRate(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := attemptevent.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := attemptevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceBase(); ok {
		_spec.SetField(attemptevent.FieldSourceBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceBase(); ok {
		_spec.AddField(attemptevent.FieldSourceBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetBase(); ok {
		_spec.SetField(attemptevent.FieldTargetBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetBase(); ok {
		_spec.AddField(attemptevent.FieldTargetBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(attemptevent.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(attemptevent.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(attemptevent.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SolvingTime(); ok {
		_spec.SetField(attemptevent.FieldSolvingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSolvingTime(); ok {
		_spec.AddField(attemptevent.FieldSolvingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(attemptevent.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(attemptevent.FieldErrorRate, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdateOne) SetKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSourceBase sets the "source_base" field.
func (_u *AttemptEventUpdateOne) SetSourceBase(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetSourceBase()
	_u.mutation.SetSourceBase(v)
	return _u
}

// SetNillableSourceBase sets the "source_base" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSourceBase(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSourceBase(*v)
	}
	return _u
}

// AddSourceBase adds value to the "source_base" field.
func (_u *AttemptEventUpdateOne) AddSourceBase(v int) *AttemptEventUpdateOne {
	_u.mutation.AddSourceBase(v)
	return _u
}

// SetTargetBase sets the "target_base" field.
func (_u *AttemptEventUpdateOne) SetTargetBase(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTargetBase()
	_u.mutation.SetTargetBase(v)
	return _u
}

// SetNillableTargetBase sets the "target_base" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTargetBase(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTargetBase(*v)
	}
	return _u
}

// AddTargetBase adds value to the "target_base" field.
func (_u *AttemptEventUpdateOne) AddTargetBase(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTargetBase(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *AttemptEventUpdateOne) SetValue(v string) *AttemptEventUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableValue(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *AttemptEventUpdateOne) SetComplexity(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableComplexity(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *AttemptEventUpdateOne) AddComplexity(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddComplexity(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdateOne) SetUserAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSolvingTime sets the "solving_time" field.
func (_u *AttemptEventUpdateOne) SetSolvingTime(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetSolvingTime()
	_u.mutation.SetSolvingTime(v)
	return _u
}

// SetNillableSolvingTime sets the "solving_time" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSolvingTime(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSolvingTime(*v)
	}
	return _u
}

// AddSolvingTime adds value to the "solving_time" field.
func (_u *AttemptEventUpdateOne) AddSolvingTime(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddSolvingTime(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AttemptEventUpdateOne) SetErrorRate(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableErrorRate(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AttemptEventUpdateOne) AddErrorRate(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddErrorRate(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := attemptevent.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := attemptevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceBase(); ok {
		_spec.SetField(attemptevent.FieldSourceBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceBase(); ok {
		_spec.AddField(attemptevent.FieldSourceBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetBase(); ok {
		_spec.SetField(attemptevent.FieldTargetBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetBase(); ok {
		_spec.AddField(attemptevent.FieldTargetBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(attemptevent.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(attemptevent.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(attemptevent.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SolvingTime(); ok {
		_spec.SetField(attemptevent.FieldSolvingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSolvingTime(); ok {
		_spec.AddField(attemptevent.FieldSolvingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(attemptevent.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(attemptevent.FieldErrorRate, field.TypeFloat64, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
