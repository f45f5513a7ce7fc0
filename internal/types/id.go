// README: Shared record identifier type.
package types

// ID is a server-assigned record identifier (UUID string).
type ID string

func (id ID) String() string { return string(id) }
