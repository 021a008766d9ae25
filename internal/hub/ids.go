package hub

// WindowID, FloatWindowID, ContainerID, WorkspaceID and MonitorID are
// opaque arena indices. They are distinct Go types so a WindowID can never
// be passed where a ContainerID is expected, even though both are backed
// by the same underlying integer representation — entity kinds never
// share an index space across arenas.
type WindowID int

type FloatWindowID int

type ContainerID int

type WorkspaceID int

type MonitorID int
