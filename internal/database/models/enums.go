package models

import "strings"

// GlobalRole is the application-wide role stored on a user profile
type GlobalRole string

const (
	GlobalRoleNone  GlobalRole = ""
	GlobalRoleOwner GlobalRole = "owner"
	GlobalRoleAdmin GlobalRole = "admin"
)

// IsGlobalAdmin reports whether the role bypasses all condominium checks.
// Comparison ignores case.
func (r GlobalRole) IsGlobalAdmin() bool {
	switch GlobalRole(strings.ToLower(strings.TrimSpace(string(r)))) {
	case GlobalRoleOwner, GlobalRoleAdmin:
		return true
	}
	return false
}

// Role is the role a user holds inside one condominium
type Role string

const (
	RoleSindico     Role = "sindico"
	RoleFuncionario Role = "funcionario"
	RoleZelador     Role = "zelador"
	RoleMorador     Role = "morador"
	RoleFornecedor  Role = "fornecedor"
	RoleAdmin       Role = "admin"
)

// Normalize lowercases and trims the role
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// IsValid checks if the Role is one of the known roles
func (r Role) IsValid() bool {
	switch r.Normalize() {
	case RoleSindico, RoleFuncionario, RoleZelador, RoleMorador, RoleFornecedor, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r matches any role in allow, ignoring case
func (r Role) In(allow ...Role) bool {
	n := r.Normalize()
	if n == "" {
		return false
	}
	for _, a := range allow {
		if a.Normalize() == n {
			return true
		}
	}
	return false
}

// Common allow-lists used by route guards
var (
	ManagementRoles = []Role{RoleSindico, RoleAdmin}
	StaffRoles      = []Role{RoleSindico, RoleAdmin, RoleFuncionario, RoleZelador}
	TicketRoles     = []Role{RoleSindico, RoleAdmin, RoleFuncionario, RoleZelador, RoleMorador}
	WorkOrderRoles  = []Role{RoleSindico, RoleAdmin, RoleFuncionario, RoleZelador, RoleFornecedor}
	AllRoles        = []Role{RoleSindico, RoleAdmin, RoleFuncionario, RoleZelador, RoleMorador, RoleFornecedor}
)

// AssetStatus defines the operating state of an asset
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "ativo"
	AssetStatusMaintenance AssetStatus = "em_manutencao"
	AssetStatusInactive    AssetStatus = "inativo"
)

// IsValid checks if the AssetStatus is valid
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusActive, AssetStatusMaintenance, AssetStatusInactive:
		return true
	}
	return false
}

// Priority is shared by tickets and work orders
type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
	PriorityUrgent Priority = "urgente"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TicketStatus defines the lifecycle of a chamado
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "aberto"
	TicketStatusInProgress TicketStatus = "em_andamento"
	TicketStatusResolved   TicketStatus = "resolvido"
	TicketStatusClosed     TicketStatus = "fechado"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the ticket still needs attention
func (s TicketStatus) IsOpen() bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress
}

// WorkOrderStatus defines the lifecycle of an OS
type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "aberta"
	WorkOrderStatusScheduled  WorkOrderStatus = "agendada"
	WorkOrderStatusInProgress WorkOrderStatus = "em_execucao"
	WorkOrderStatusDone       WorkOrderStatus = "concluida"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelada"
)

var workOrderTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderStatusOpen:       {WorkOrderStatusScheduled, WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusScheduled:  {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusInProgress: {WorkOrderStatusDone, WorkOrderStatusCancelled},
}

// IsValid checks if the WorkOrderStatus is valid
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusScheduled, WorkOrderStatusInProgress, WorkOrderStatusDone, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusDone || s == WorkOrderStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	for _, allowed := range workOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ConformityStatus is the traffic-light state derived for a conformity item
type ConformityStatus string

const (
	ConformityStatusGreen  ConformityStatus = "verde"
	ConformityStatusYellow ConformityStatus = "amarelo"
	ConformityStatusRed    ConformityStatus = "vermelho"
	ConformityStatusGray   ConformityStatus = "cinza"
)
