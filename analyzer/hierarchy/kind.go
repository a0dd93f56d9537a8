package hierarchy

// ScopeType describes who may invoke a function
type ScopeType string

const (
	Private     ScopeType = "Private"
	Public      ScopeType = "Public"
	Trait       ScopeType = "Trait"
	Payable     ScopeType = "Payable"
	Initializer ScopeType = "Initializer"
	Contract    ScopeType = "Contract" // synthetic root
)

// Scopes lists every scope in enumeration order
var Scopes = []ScopeType{Private, Public, Trait, Payable, Initializer, Contract}

// ActionType describes what a function does to contract state
type ActionType string

const (
	Mutation ActionType = "Mutation"
	View     ActionType = "View"
	Process  ActionType = "Process"
	Event    ActionType = "Event"
	None     ActionType = "None"
)

// Actions lists every action in enumeration order
var Actions = []ActionType{Mutation, View, Process, Event, None}

// ConnectionType describes how a caller reaches its callee
type ConnectionType string

const (
	DirectConnection        ConnectionType = "Direct"
	CrossContractConnection ConnectionType = "CrossContract"
	Emission                ConnectionType = "Emission"
)

// Class returns the style class name of a scope and action pair, e.g. Public-View
func Class(scope ScopeType, action ActionType) string {
	return string(scope) + "-" + string(action)
}
