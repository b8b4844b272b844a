package model

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -json -sql -output action.gen.go

// Action is a CRUD operation on a governed table.
type Action int

const (
	ActionCreate Action = iota
	ActionRead
	ActionUpdate
	ActionDelete
)
