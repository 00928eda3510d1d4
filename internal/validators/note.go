// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field names accepted by [NoteValidator.Validate]. They match the JSON
// names of [models.Note].
const (
	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldFolder    = "folder"
	FieldTags      = "tags"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// struct field names used by validator.StructPartial
var noteStructFields = map[string]string{
	FieldID:        "ID",
	FieldUserID:    "UserID",
	FieldFolder:    "Folder",
	FieldTags:      "Tags",
	FieldCreatedAt: "CreatedAt",
	FieldUpdatedAt: "UpdatedAt",
}

var fieldErrors = map[string]error{
	FieldID:        ErrInvalidNoteID,
	FieldUserID:    ErrInvalidUserID,
	FieldFolder:    ErrEmptyFolder,
	FieldTags:      ErrInvalidTag,
	FieldCreatedAt: ErrInvalidTimestamps,
	FieldUpdatedAt: ErrInvalidTimestamps,
}

// NoteValidator validates [models.Note], [models.NotePatch] and
// [models.Operation] values using the validate struct tags on the models.
type NoteValidator struct {
	validate *validator.Validate
}

func NewNoteValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &NoteValidator{validate: v}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NotePatch:
		return v.validatePatch(ctx, value)
	case *models.NotePatch:
		return v.validatePatch(ctx, *value)

	case models.Operation:
		return v.validateOperation(ctx, value)
	case *models.Operation:
		return v.validateOperation(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, note)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := noteStructFields[f]
			if !ok {
				return ErrUnknownField
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, note, names...)
	}
	if err != nil {
		return mapValidationError(err)
	}

	for _, tag := range note.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: empty tag", ErrInvalidTag)
		}
	}
	return nil
}

func (v *NoteValidator) validatePatch(ctx context.Context, patch models.NotePatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if err := v.validate.StructCtx(ctx, patch); err != nil {
		return mapValidationError(err)
	}
	if patch.Tags != nil {
		for _, tag := range *patch.Tags {
			if strings.TrimSpace(tag) == "" {
				return fmt.Errorf("%w: empty tag", ErrInvalidTag)
			}
		}
	}
	return nil
}

func (v *NoteValidator) validateOperation(ctx context.Context, op models.Operation) error {
	if err := op.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	switch op.Kind {
	case models.OperationCreate:
		if err := v.validateNote(ctx, *op.Note); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
		}
	case models.OperationUpdate:
		if err := v.validatePatch(ctx, *op.Patch); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
		}
	}
	return nil
}

// mapValidationError turns the first failed field into the matching
// sentinel error.
func mapValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	if sentinel, ok := fieldErrors[fe.Field()]; ok {
		return fmt.Errorf("%w: %s failed %q", sentinel, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%s failed %q: %w", fe.Namespace(), fe.Tag(), err)
}
