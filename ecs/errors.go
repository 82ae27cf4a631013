package ecs

import "errors"

// ErrNoSuchEntity is returned when an operation targets a dead or unknown
// entity id (wrong generation, or an id World never allocated).
var ErrNoSuchEntity = errors.New("ecs: no such entity")

// ErrComponentMissing is returned by Get/GetMut when the entity is alive
// but does not carry the requested component type.
var ErrComponentMissing = errors.New("ecs: component missing")

// ErrCycleRejected is returned by SetParent when the requested reparent
// would create a cycle in the Parent/Children forest.
var ErrCycleRejected = errors.New("ecs: cycle rejected")
