// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrFolderNotFound   = errors.New("folder not found")
	ErrProtectedFolder  = errors.New("folder is protected")
	ErrEmptyFolderName  = errors.New("folder name is empty")
	ErrInvalidPatch     = errors.New("invalid note patch")
	ErrIdentityNotFound = errors.New("identity not found")
)
