package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleName identifies a role in the permission registry
type RoleName string

const (
	RoleOwner  RoleName = "OWNER"
	RoleAdmin  RoleName = "ADMIN"
	RoleMember RoleName = "MEMBER"
)

// Permission is an atomic capability token
type Permission string

const (
	PermissionCreateWorkspace         Permission = "CREATE_WORKSPACE"
	PermissionDeleteWorkspace         Permission = "DELETE_WORKSPACE"
	PermissionEditWorkspace           Permission = "EDIT_WORKSPACE"
	PermissionManageWorkspaceSettings Permission = "MANAGE_WORKSPACE_SETTINGS"
	PermissionAddMember               Permission = "ADD_MEMBER"
	PermissionChangeMemberRole        Permission = "CHANGE_MEMBER_ROLE"
	PermissionRemoveMember            Permission = "REMOVE_MEMBER"
	PermissionCreateProject           Permission = "CREATE_PROJECT"
	PermissionEditProject             Permission = "EDIT_PROJECT"
	PermissionDeleteProject           Permission = "DELETE_PROJECT"
	PermissionCreateTask              Permission = "CREATE_TASK"
	PermissionEditTask                Permission = "EDIT_TASK"
	PermissionDeleteTask              Permission = "DELETE_TASK"
	PermissionViewOnly                Permission = "VIEW_ONLY"
)

// Role is the persisted form of a registry entry
type Role struct {
	ID          uuid.UUID    `json:"id"`
	Name        RoleName     `json:"name"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
