package node

// DispatcherEnum is the way a binding writes its destination field.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherScalar
	DispatcherStruct
	DispatcherPointer
	DispatcherSlice
	DispatcherArray

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
