// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package docmodel

import (
	"fmt"
)

// DefaultDatabaseID is the database name used when a project does not
// name one explicitly.
const DefaultDatabaseID = "(default)"

// DatabaseID identifies a database within a project.
type DatabaseID struct {
	projectID  string
	databaseID string
}

// NewDatabaseID returns the ID for the given project and database
// names.  Both must be non-empty; an empty database name is a caller
// bug, use DefaultDatabaseID explicitly.
func NewDatabaseID(projectID, databaseID string) (DatabaseID, error) {
	if projectID == "" {
		return DatabaseID{}, fmt.Errorf("docmodel: empty project ID")
	}
	if databaseID == "" {
		return DatabaseID{}, fmt.Errorf("docmodel: empty database ID in project %q", projectID)
	}
	return DatabaseID{projectID: projectID, databaseID: databaseID}, nil
}

// ProjectID returns the project name.
func (id DatabaseID) ProjectID() string { return id.projectID }

// DatabaseID returns the database name within the project.
func (id DatabaseID) DatabaseID() string { return id.databaseID }

// IsDefaultDatabase reports whether this is the project's default
// database.
func (id DatabaseID) IsDefaultDatabase() bool {
	return id.databaseID == DefaultDatabaseID
}

// Compare orders IDs by project, then by database.
func (id DatabaseID) Compare(other DatabaseID) int {
	if id.projectID != other.projectID {
		if id.projectID < other.projectID {
			return -1
		}
		return 1
	}
	switch {
	case id.databaseID < other.databaseID:
		return -1
	case id.databaseID > other.databaseID:
		return 1
	default:
		return 0
	}
}

func (id DatabaseID) String() string {
	return id.projectID + "/" + id.databaseID
}
