// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Surfer12/microarch-lab-conversions/ent/pathway"
	"github.com/Surfer12/microarch-lab-conversions/ent/predicate"
)

// PathwayUpdate is the builder for updating Pathway entities.
type PathwayUpdate struct {
	config
	hooks    []Hook
	mutation *PathwayMutation
}

// Where appends a list predicates to the PathwayUpdate builder.
func (_u *PathwayUpdate) Where(ps ...predicate.Pathway) *PathwayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PathwayUpdate) SetName(v string) *PathwayUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableName(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PathwayUpdate) SetDescription(v string) *PathwayUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableDescription(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PathwayUpdate) ClearDescription() *PathwayUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLevel sets the "level" field.
func (_u *PathwayUpdate) SetLevel(v string) *PathwayUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PathwayUpdate) SetNillableLevel(v *string) *PathwayUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PathwayUpdate) SetUpdatedAt(v time.Time) *PathwayUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PathwayMutation object of the builder.
func (_u *PathwayUpdate) Mutation() *PathwayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathwayUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathwayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PathwayUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pathway.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pathway.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Pathway.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathway.Table, pathway.Columns, sqlgraph.NewFieldSpec(pathway.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pathway.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pathway.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pathway.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pathway.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pathway.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathwayUpdateOne is the builder for updating a single Pathway entity.
type PathwayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathwayMutation
}

// SetName sets the "name" field.
func (_u *PathwayUpdateOne) SetName(v string) *PathwayUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableName(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PathwayUpdateOne) SetDescription(v string) *PathwayUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableDescription(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PathwayUpdateOne) ClearDescription() *PathwayUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLevel sets the "level" field.
func (_u *PathwayUpdateOne) SetLevel(v string) *PathwayUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PathwayUpdateOne) SetNillableLevel(v *string) *PathwayUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PathwayUpdateOne) SetUpdatedAt(v time.Time) *PathwayUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PathwayMutation object of the builder.
func (_u *PathwayUpdateOne) Mutation() *PathwayMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathwayUpdate builder.
func (_u *PathwayUpdateOne) Where(ps ...predicate.Pathway) *PathwayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathwayUpdateOne) Select(field string, fields ...string) *PathwayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pathway entity.
func (_u *PathwayUpdateOne) Save(ctx context.Context) (*Pathway, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathwayUpdateOne) SaveX(ctx context.Context) *Pathway {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathwayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathwayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PathwayUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pathway.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathwayUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pathway.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Pathway.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PathwayUpdateOne) sqlSave(ctx context.Context) (_node *Pathway, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathway.Table, pathway.Columns, sqlgraph.NewFieldSpec(pathway.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pathway.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathway.FieldID)
		for _, f := range fields {
			if !pathway.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathway.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pathway.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pathway.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pathway.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pathway.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pathway.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Pathway{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
