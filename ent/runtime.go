// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Surfer12/microarch-lab-conversions/ent/attemptevent"
	"github.com/Surfer12/microarch-lab-conversions/ent/pathway"
	"github.com/Surfer12/microarch-lab-conversions/ent/schema"
	"github.com/Surfer12/microarch-lab-conversions/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[1].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescValue is the schema descriptor for value field.
	attempteventDescValue := attempteventFields[4].Descriptor()
	// attemptevent.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	attemptevent.ValueValidator = attempteventDescValue.Validators[0].(func(string) error)
	// attempteventDescLevel is the schema descriptor for level field.
	attempteventDescLevel := attempteventFields[5].Descriptor()
	// attemptevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	attemptevent.LevelValidator = attempteventDescLevel.Validators[0].(func(string) error)
	pathwayFields := schema.Pathway{}.Fields()
	_ = pathwayFields
	// pathwayDescName is the schema descriptor for name field.
	pathwayDescName := pathwayFields[0].Descriptor()
	// pathway.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pathway.NameValidator = pathwayDescName.Validators[0].(func(string) error)
	// pathwayDescLevel is the schema descriptor for level field.
	pathwayDescLevel := pathwayFields[2].Descriptor()
	// pathway.DefaultLevel holds the default value on creation for the level field.
	pathway.DefaultLevel = pathwayDescLevel.Default.(string)
	// pathwayDescCreatedAt is the schema descriptor for created_at field.
	pathwayDescCreatedAt := pathwayFields[3].Descriptor()
	// pathway.DefaultCreatedAt holds the default value on creation for the created_at field.
	pathway.DefaultCreatedAt = pathwayDescCreatedAt.Default.(func() time.Time)
	// pathwayDescUpdatedAt is the schema descriptor for updated_at field.
	pathwayDescUpdatedAt := pathwayFields[4].Descriptor()
	// pathway.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pathway.DefaultUpdatedAt = pathwayDescUpdatedAt.Default.(func() time.Time)
	// pathway.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pathway.UpdateDefaultUpdatedAt = pathwayDescUpdatedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
