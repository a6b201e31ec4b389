package types

// EntityID — идентификатор сущности, уникальный в пределах одной игровой сессии.
type EntityID uint64
